package user

import (
	"context"
	"errors"
)

var (
	// ErrEmailTaken is returned when the email already belongs to a user.
	ErrEmailTaken = errors.New("email already taken")
	// ErrCreationFailed matches every CreationError.
	ErrCreationFailed = errors.New("user creation failed")
)

// Store abstracts persistence of users.
type Store interface {
	Begin(ctx context.Context) (Tx, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// Tx is a unit of work on the users table. Rollback after Commit is a no-op.
type Tx interface {
	Insert(ctx context.Context, u User) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// CreationError wraps the persistence failure behind a rolled back registration.
type CreationError struct {
	Err error
}

func (e *CreationError) Error() string { return "create user: " + e.Err.Error() }

func (e *CreationError) Unwrap() []error { return []error{ErrCreationFailed, e.Err} }
