package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/members/api/http/presenter"
	"github.com/artem13815/members/pkg/logrecorder"
	"github.com/artem13815/members/pkg/validation"
)

// LogRecorder is the part of *logrecorder.Recorder used over HTTP.
type LogRecorder interface {
	Record(ctx context.Context, level logrecorder.Level, message string, fields logrecorder.Context) error
	Error(ctx context.Context, message string, fields logrecorder.Context) error
	List(ctx context.Context, f logrecorder.Filter) ([]logrecorder.Entry, error)
}

type LogHandler struct {
	recorder  LogRecorder
	validator StructValidator
}

func NewLogHandler(recorder LogRecorder, v StructValidator) *LogHandler {
	return &LogHandler{recorder: recorder, validator: v}
}

type recordLogRequest struct {
	Level   string         `json:"level,omitempty" validate:"omitempty,oneof=info warning error"`
	Message string         `json:"message" validate:"required,max=2000"`
	Context map[string]any `json:"context,omitempty"`
}

// Store records an application message.
// @Summary Record log message
// @Tags    logs
// @Accept  json
// @Produce json
// @Param   version path string true "API version" Enums(v1, v2)
// @Param   input body recordLogRequest true "log message"
// @Success 200 {object} presenter.SuccessResponse
// @Failure 422 {object} presenter.ValidationResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /{version}/logs [post]
func (h *LogHandler) Store(c *fiber.Ctx) error {
	var req recordLogRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	ctx := c.UserContext()
	if err := h.validator.Struct(ctx, req); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return presenter.Invalid(c, verr.Fields)
		}
		return presenter.Failure(c, http.StatusInternalServerError, "Error while recording the log", err)
	}

	level := logrecorder.Level(req.Level)
	if level == "" {
		level = logrecorder.LevelInfo
	}
	if err := h.recorder.Record(ctx, level, req.Message, req.Context); err != nil {
		// best effort: the store may be the thing that is failing
		_ = h.recorder.Error(ctx, "log operation failed", logrecorder.Context{"error": err.Error()})
		return presenter.Failure(c, http.StatusInternalServerError, "Error while recording the log", err)
	}
	return presenter.Success(c, http.StatusOK, "Log recorded", nil)
}

// Index lists stored log entries, newest first.
// @Summary List log entries
// @Tags    logs
// @Produce json
// @Param   version path string true "API version" Enums(v1, v2)
// @Param   level query string false "level filter" Enums(info, warning, error)
// @Param   limit query int false "page size (max 200)"
// @Param   offset query int false "offset"
// @Security BearerAuth
// @Success 200 {object} presenter.ListResponse{data=[]logrecorder.Entry}
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /{version}/logs [get]
func (h *LogHandler) Index(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	level := logrecorder.Level(strings.ToLower(strings.TrimSpace(c.Query("level"))))

	entries, err := h.recorder.List(c.UserContext(), logrecorder.Filter{Level: level, Limit: limit, Offset: offset})
	if err != nil {
		if errors.Is(err, logrecorder.ErrInvalidLevel) {
			return presenter.Error(c, http.StatusBadRequest, "level must be one of: info, warning, error")
		}
		return presenter.Failure(c, http.StatusInternalServerError, "failed to list logs", err)
	}
	if entries == nil {
		entries = []logrecorder.Entry{}
	}
	return presenter.List(c, http.StatusOK, "OK", entries)
}
