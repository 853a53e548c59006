package user

import (
	"time"

	"github.com/google/uuid"
)

// Gender values accepted by registration.
const (
	GenderMale   = "Masculino"
	GenderFemale = "Femenino"
	GenderOther  = "Otro"
)

// User is a registered member. PasswordHash is never serialized.
type User struct {
	ID           uuid.UUID  `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	Gender       *string    `json:"gender,omitempty"`
	Address      *string    `json:"address,omitempty"`
	PhoneNumber  *string    `json:"phone_number,omitempty"`
	Insurance    *int64     `json:"insurance,omitempty"`
	DNI          *string    `json:"dni,omitempty"`
	Product      *int64     `json:"product,omitempty"`
	Membership   *string    `json:"membership,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Payload is the validated registration input.
type Payload struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	DateOfBirth *time.Time
	Gender      *string
	Address     *string
	PhoneNumber *string
	Insurance   *int64
	DNI         *string
	Product     *int64
	Membership  *string
}
