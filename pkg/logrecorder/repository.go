package logrecorder

import (
	"context"
	"errors"
)

var (
	// ErrInvalidLevel is returned for levels other than info, warning and error.
	ErrInvalidLevel = errors.New("invalid log level")
	// ErrPersistFailed matches every PersistError.
	ErrPersistFailed = errors.New("log entry not persisted")
)

// Repository stores audit entries. Implementations must be append-only.
type Repository interface {
	Insert(ctx context.Context, e Entry) (Entry, error)
	List(ctx context.Context, f Filter) ([]Entry, error)
}

// PersistError reports that the audit row could not be written.
// It is kept apart from business errors so callers can ignore it.
type PersistError struct {
	Level   Level
	Message string
	Err     error
}

func (e *PersistError) Error() string {
	return "persist " + string(e.Level) + " log entry: " + e.Err.Error()
}

func (e *PersistError) Unwrap() []error { return []error{ErrPersistFailed, e.Err} }
