package logrecorder

import (
	"encoding/json"
	"log/slog"
	"time"
)

// Level is the severity stored with an audit entry.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Valid reports whether l is one of the persisted levels.
func (l Level) Valid() bool {
	switch l {
	case LevelInfo, LevelWarning, LevelError:
		return true
	}
	return false
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Context is the free-form data attached to an entry.
type Context map[string]any

// Entry is an immutable row of the logs table.
type Entry struct {
	ID        int64           `json:"id"`
	Level     Level           `json:"level"`
	Message   string          `json:"message"`
	Context   json.RawMessage `json:"context" swaggertype:"object"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Filter narrows List results. Zero values mean no restriction.
type Filter struct {
	Level  Level
	Limit  int
	Offset int
}
