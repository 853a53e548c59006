package logrecorder

import (
	"errors"
	"fmt"
)

// Key names an entry of the message catalog.
type Key string

const (
	InfoGet        Key = "InfoGet"
	InfoCreate     Key = "InfoCreate"
	InfoUpdate     Key = "InfoUpdate"
	InfoPatch      Key = "InfoPatch"
	InfoDelete     Key = "InfoDelete"
	UserCreated    Key = "UserCreated"
	CreateUser     Key = "CreateUser"
	GetAllUser     Key = "GetAllUser"
	GetPatientByID Key = "GetPatientByID"
)

// ErrUnknownMessage is returned by Text for keys outside the catalog.
var ErrUnknownMessage = errors.New("unknown message key")

var catalog = map[Key]string{
	InfoGet:        "Método Get ejecutado satisfactoriamente",
	InfoCreate:     "Método Create ejecutado satisfactoriamente",
	InfoUpdate:     "Método Update ejecutado satisfactoriamente",
	InfoPatch:      "Método PATCH ejecutado satisfactoriamente",
	InfoDelete:     "Método Delete ejecutado satisfactoriamente",
	UserCreated:    "user created",
	CreateUser:     "Servicio CreateUser",
	GetAllUser:     "Servicio GetAllUser",
	GetPatientByID: "Servicio GetPatientById",
}

var keys = []Key{
	InfoGet, InfoCreate, InfoUpdate, InfoPatch, InfoDelete,
	UserCreated, CreateUser, GetAllUser, GetPatientByID,
}

// Text returns the canonical string for k.
func Text(k Key) (string, error) {
	s, ok := catalog[k]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownMessage, string(k))
	}
	return s, nil
}

// String returns the canonical text, or the raw key when it is not catalogued.
func (k Key) String() string {
	if s, ok := catalog[k]; ok {
		return s
	}
	return string(k)
}

// Keys lists every catalogued key.
func Keys() []Key {
	out := make([]Key, len(keys))
	copy(out, keys)
	return out
}
