package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/members/pkg/logging"
	"github.com/artem13815/members/pkg/logrecorder"
)

// UseCase describes member registration.
type UseCase interface {
	Create(ctx context.Context, p Payload) (User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
}

// AuditLogger records business events. *logrecorder.Recorder satisfies it.
type AuditLogger interface {
	Info(ctx context.Context, message string, fields logrecorder.Context) error
}

type service struct {
	store Store
	audit AuditLogger
	log   *slog.Logger
	cost  int
	now   func() time.Time
	newID func() uuid.UUID
}

// NewService returns the default UseCase. A cost outside bcrypt's range
// falls back to bcrypt.DefaultCost.
func NewService(store Store, audit AuditLogger, log *slog.Logger, cost int) UseCase {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if log == nil {
		log = slog.Default()
	}
	return &service{
		store: store,
		audit: audit,
		log:   log,
		cost:  cost,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.New,
	}
}

func (s *service) EmailTaken(ctx context.Context, email string) (bool, error) {
	return s.store.EmailExists(ctx, normalizeEmail(email))
}

// Create stores the user in a single transaction and records the audit entry
// only after the commit succeeded.
func (s *service) Create(ctx context.Context, p Payload) (User, error) {
	u, err := s.insert(ctx, p)
	if err != nil {
		logging.With(ctx, s.log).ErrorContext(ctx, "user creation failed", "error", err)
		return User{}, &CreationError{Err: err}
	}

	msg, _ := logrecorder.Text(logrecorder.UserCreated)
	op, _ := logrecorder.Text(logrecorder.CreateUser)
	if err := s.audit.Info(ctx, msg, logrecorder.Context{
		"context": op,
		"user_id": u.ID.String(),
	}); err != nil {
		logging.With(ctx, s.log).WarnContext(ctx, "audit entry not stored", "user_id", u.ID.String(), "error", err)
	}
	return u, nil
}

func (s *service) insert(ctx context.Context, p Payload) (u User, err error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return User{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	u = User{
		ID:           s.newID(),
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        normalizeEmail(p.Email),
		PasswordHash: string(hash),
		DateOfBirth:  p.DateOfBirth,
		Gender:       p.Gender,
		Address:      p.Address,
		PhoneNumber:  p.PhoneNumber,
		Insurance:    p.Insurance,
		DNI:          p.DNI,
		Product:      p.Product,
		Membership:   p.Membership,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err = tx.Insert(ctx, u); err != nil {
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return User{}, fmt.Errorf("commit: %w", err)
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
