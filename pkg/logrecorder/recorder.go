// Package logrecorder writes application messages to the slog transport and
// to the persistent logs table.
package logrecorder

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/artem13815/members/pkg/logging"
)

const defaultListLimit = 50

// Recorder fans a message out to the transport and the repository.
type Recorder struct {
	repo      Repository
	transport *slog.Logger
	now       func() time.Time
}

// NewRecorder builds a Recorder. A nil transport disables forwarding.
func NewRecorder(repo Repository, transport *slog.Logger) *Recorder {
	return &Recorder{
		repo:      repo,
		transport: transport,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Info records an info-level message.
func (r *Recorder) Info(ctx context.Context, message string, fields Context) error {
	return r.Record(ctx, LevelInfo, message, fields)
}

// Warning records a warning-level message.
func (r *Recorder) Warning(ctx context.Context, message string, fields Context) error {
	return r.Record(ctx, LevelWarning, message, fields)
}

// Error records an error-level message.
func (r *Recorder) Error(ctx context.Context, message string, fields Context) error {
	return r.Record(ctx, LevelError, message, fields)
}

// Record forwards the message to the transport and appends it to the logs
// table. Transport failures are swallowed; a storage failure is returned as
// *PersistError.
func (r *Recorder) Record(ctx context.Context, level Level, message string, fields Context) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, string(level))
	}

	r.forward(ctx, level, message, fields)

	raw, err := encodeContext(fields)
	if err != nil {
		return &PersistError{Level: level, Message: message, Err: err}
	}

	now := r.now()
	_, err = r.repo.Insert(ctx, Entry{
		Level:     level,
		Message:   message,
		Context:   raw,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return &PersistError{Level: level, Message: message, Err: err}
	}
	return nil
}

// List returns stored entries, newest first.
func (r *Recorder) List(ctx context.Context, f Filter) ([]Entry, error) {
	if f.Level != "" && !f.Level.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, string(f.Level))
	}
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return r.repo.List(ctx, f)
}

func (r *Recorder) forward(ctx context.Context, level Level, message string, fields Context) {
	if r.transport == nil {
		return
	}
	// a misbehaving handler must not take the request down with it
	defer func() { _ = recover() }()

	args := make([]any, 0, 2)
	if len(fields) > 0 {
		args = append(args, slog.Any("context", map[string]any(fields)))
	}
	logging.With(ctx, r.transport).Log(ctx, level.slogLevel(), message, args...)
}

func encodeContext(fields Context) (json.RawMessage, error) {
	if len(fields) == 0 {
		return json.RawMessage("{}"), nil
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode context: %w", err)
	}
	return b, nil
}
