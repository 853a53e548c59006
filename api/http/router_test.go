package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	apihttp "github.com/artem13815/members/api/http"
	"github.com/artem13815/members/api/http/handlers"
	"github.com/artem13815/members/pkg/health"
	"github.com/artem13815/members/pkg/logrecorder"
	"github.com/artem13815/members/pkg/security/jwt"
	"github.com/artem13815/members/pkg/user"
	"github.com/artem13815/members/pkg/validation"
	"github.com/artem13815/members/pkg/version"
)

const (
	secret = "test-secret"
	issuer = "members-test"
)

type memStore struct {
	mu        sync.Mutex
	rows      map[string]user.User
	insertErr error
}

type memTx struct {
	s       *memStore
	pending []user.User
	done    bool
}

func (s *memStore) Begin(context.Context) (user.Tx, error) { return &memTx{s: s}, nil }

func (s *memStore) EmailExists(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.rows[email]
	return ok, nil
}

func (t *memTx) Insert(_ context.Context, u user.User) error {
	if t.s.insertErr != nil {
		return t.s.insertErr
	}
	t.pending = append(t.pending, u)
	return nil
}

func (t *memTx) Commit(context.Context) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for _, u := range t.pending {
		t.s.rows[u.Email] = u
	}
	t.done = true
	return nil
}

func (t *memTx) Rollback(context.Context) error {
	t.pending = nil
	return nil
}

type memLogs struct {
	mu      sync.Mutex
	entries []logrecorder.Entry
	err     error
}

func (m *memLogs) Insert(_ context.Context, e logrecorder.Entry) (logrecorder.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return logrecorder.Entry{}, m.err
	}
	e.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, e)
	return e, nil
}

func (m *memLogs) List(_ context.Context, f logrecorder.Filter) ([]logrecorder.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []logrecorder.Entry{}
	for i := len(m.entries) - 1; i >= 0; i-- {
		if f.Level == "" || m.entries[i].Level == f.Level {
			out = append(out, m.entries[i])
		}
	}
	return out, nil
}

type checker struct{ err error }

func (c checker) Name() string                { return "postgres" }
func (c checker) Check(context.Context) error { return c.err }

type env struct {
	app   *fiber.App
	store *memStore
	logs  *memLogs
}

func newEnv(t *testing.T, versions []string, ready error) *env {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := &memStore{rows: map[string]user.User{}}
	logs := &memLogs{}
	recorder := logrecorder.NewRecorder(logs, log)
	v := validation.New()

	app := apihttp.NewApp(log)
	err := apihttp.Register(app, versions, apihttp.Handlers{
		Users:    handlers.NewUserHandler(user.NewService(store, recorder, log, bcrypt.MinCost), v),
		Logs:     handlers.NewLogHandler(recorder, v),
		Health:   handlers.NewHealthHandler(health.NewService(checker{err: ready})),
		LogsAuth: jwt.NewAuthMiddleware(secret, issuer, jwt.ScopeLogsRead),
	})
	assert.NilError(t, err)
	return &env{app: app, store: store, logs: logs}
}

func (e *env) do(t *testing.T, method, path string, body any, header ...string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		assert.NilError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if len(header) == 2 {
		req.Header.Set(header[0], header[1])
	}
	resp, err := e.app.Test(req, -1)
	assert.NilError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	assert.NilError(t, err)
	if len(raw) > 0 {
		assert.NilError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func validBody() map[string]any {
	return map[string]any{
		"first_name": "Ana",
		"last_name":  "Diaz",
		"email":      "ana@x.com",
		"password":   "longenough",
	}
}

func TestRegisterUser(t *testing.T) {
	e := newEnv(t, nil, nil)

	status, body := e.do(t, http.MethodPost, "/v1/users/", validBody())
	assert.Equal(t, status, http.StatusCreated)
	assert.Equal(t, body["success"], true)
	assert.Equal(t, body["message"], "User created successfully")

	data := body["data"].(map[string]any)
	assert.Equal(t, data["email"], "ana@x.com")
	assert.Equal(t, data["first_name"], "Ana")
	assert.Assert(t, data["password"] != "longenough")
	assert.Assert(t, data["id"] != "")

	stored := e.store.rows["ana@x.com"]
	assert.Assert(t, stored.PasswordHash != "longenough")
	assert.NilError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("longenough")))

	assert.Equal(t, len(e.logs.entries), 1)
	assert.Equal(t, e.logs.entries[0].Level, logrecorder.LevelInfo)
	assert.Equal(t, e.logs.entries[0].Message, "user created")
	assert.Check(t, is.Contains(string(e.logs.entries[0].Context), data["id"].(string)))
}

func TestRegisterUserWithoutTrailingSlashAndFullProfile(t *testing.T) {
	e := newEnv(t, nil, nil)
	b := validBody()
	b["date_of_birth"] = "1991-07-15"
	b["gender"] = "Femenino"
	b["insurance"] = 12
	b["product"] = 3
	b["dni"] = "12345678Z"
	b["membership"] = "gold"

	status, body := e.do(t, http.MethodPost, "/v1/users", b)
	assert.Equal(t, status, http.StatusCreated)
	data := body["data"].(map[string]any)
	assert.Equal(t, data["gender"], "Femenino")
	assert.Equal(t, data["insurance"], float64(12))
	assert.Check(t, is.Contains(data["date_of_birth"].(string), "1991-07-15"))

	stored := e.store.rows["ana@x.com"]
	assert.Equal(t, stored.DateOfBirth.Format(time.DateOnly), "1991-07-15")
}

func TestRegisterUserValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
		field  string
	}{
		{"missing first name", func(b map[string]any) { delete(b, "first_name") }, "first_name"},
		{"missing email", func(b map[string]any) { delete(b, "email") }, "email"},
		{"bad email", func(b map[string]any) { b["email"] = "nope" }, "email"},
		{"short password", func(b map[string]any) { b["password"] = "short" }, "password"},
		{"bad gender", func(b map[string]any) { b["gender"] = "X" }, "gender"},
		{"bad date", func(b map[string]any) { b["date_of_birth"] = "15/07/1991" }, "date_of_birth"},
		{"long phone", func(b map[string]any) { b["phone_number"] = strings.Repeat("9", 21) }, "phone_number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t, nil, nil)
			b := validBody()
			tt.mutate(b)

			status, body := e.do(t, http.MethodPost, "/v1/users/", b)
			assert.Equal(t, status, http.StatusUnprocessableEntity)
			assert.Equal(t, body["success"], false)
			errs := body["errors"].(map[string]any)
			_, ok := errs[tt.field]
			assert.Assert(t, ok, "errors: %v", errs)

			assert.Check(t, is.Len(e.store.rows, 0))
			assert.Check(t, is.Len(e.logs.entries, 0))
		})
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	e := newEnv(t, nil, nil)
	status, _ := e.do(t, http.MethodPost, "/v1/users/", validBody())
	assert.Equal(t, status, http.StatusCreated)

	b := validBody()
	b["email"] = "ANA@x.com"
	status, body := e.do(t, http.MethodPost, "/v1/users/", b)
	assert.Equal(t, status, http.StatusUnprocessableEntity)
	assert.Equal(t, body["errors"].(map[string]any)["email"], "The email has already been taken.")
	assert.Check(t, is.Len(e.store.rows, 1))
	assert.Check(t, is.Len(e.logs.entries, 1))
}

func TestRegisterUserPersistenceFailure(t *testing.T) {
	e := newEnv(t, nil, nil)
	e.store.insertErr = errors.New("disk quota exceeded")

	status, body := e.do(t, http.MethodPost, "/v1/users/", validBody())
	assert.Equal(t, status, http.StatusInternalServerError)
	assert.Equal(t, body["success"], false)
	assert.Equal(t, body["message"], "Failed to create user")
	assert.Check(t, is.Contains(body["error"].(string), "disk quota exceeded"))
	assert.Check(t, is.Len(e.store.rows, 0))
	assert.Check(t, is.Len(e.logs.entries, 0))
}

func TestRegisterUserMalformedJSON(t *testing.T) {
	e := newEnv(t, nil, nil)
	status, body := e.do(t, http.MethodPost, "/v1/users/", `{"first_name":`)
	assert.Equal(t, status, http.StatusBadRequest)
	assert.Equal(t, body["success"], false)
}

func TestVersionedRoutes(t *testing.T) {
	e := newEnv(t, nil, nil)
	status, body := e.do(t, http.MethodGet, "/v1/test", nil)
	assert.Equal(t, status, http.StatusOK)
	assert.Equal(t, body["message"], "API works!")

	status, _ = e.do(t, http.MethodGet, "/v2/test", nil)
	assert.Equal(t, status, http.StatusNotFound)

	both := newEnv(t, version.Available(), nil)
	status, _ = both.do(t, http.MethodGet, "/v2/test", nil)
	assert.Equal(t, status, http.StatusOK)
}

func TestRegisterRejectsUnknownVersion(t *testing.T) {
	app := apihttp.NewApp(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := apihttp.Register(app, []string{"v3"}, apihttp.Handlers{})
	assert.ErrorIs(t, err, version.ErrInvalidVersion)
}

func TestReadiness(t *testing.T) {
	status, body := newEnv(t, nil, nil).do(t, http.MethodGet, "/v1/ready", nil)
	assert.Equal(t, status, http.StatusOK)
	assert.Equal(t, body["status"], "ready")

	status, body = newEnv(t, nil, errors.New("down")).do(t, http.MethodGet, "/v1/ready", nil)
	assert.Equal(t, status, http.StatusServiceUnavailable)
	assert.Equal(t, body["details"].(map[string]any)["postgres"], "down")
}

func TestRecordLog(t *testing.T) {
	e := newEnv(t, nil, nil)

	status, body := e.do(t, http.MethodPost, "/v1/logs", map[string]any{
		"message": "payment gateway slow",
		"level":   "warning",
		"context": map[string]any{"latency_ms": 900},
	})
	assert.Equal(t, status, http.StatusOK)
	assert.Equal(t, body["message"], "Log recorded")
	assert.Equal(t, len(e.logs.entries), 1)
	assert.Equal(t, e.logs.entries[0].Level, logrecorder.LevelWarning)
	assert.Equal(t, string(e.logs.entries[0].Context), `{"latency_ms":900}`)

	status, _ = e.do(t, http.MethodPost, "/v1/logs", map[string]any{"message": "plain"})
	assert.Equal(t, status, http.StatusOK)
	assert.Equal(t, e.logs.entries[1].Level, logrecorder.LevelInfo)

	status, _ = e.do(t, http.MethodPost, "/v1/logs", map[string]any{"message": "x", "level": "debug"})
	assert.Equal(t, status, http.StatusUnprocessableEntity)
}

func TestRecordLogStorageFailure(t *testing.T) {
	e := newEnv(t, nil, nil)
	e.logs.err = errors.New("logs table locked")

	status, body := e.do(t, http.MethodPost, "/v1/logs", map[string]any{"message": "hello"})
	assert.Equal(t, status, http.StatusInternalServerError)
	assert.Check(t, is.Contains(body["error"].(string), "logs table locked"))
}

func TestListLogsRequiresToken(t *testing.T) {
	e := newEnv(t, nil, nil)
	_, _ = e.do(t, http.MethodPost, "/v1/users/", validBody())

	status, _ := e.do(t, http.MethodGet, "/v1/logs", nil)
	assert.Equal(t, status, http.StatusUnauthorized)

	tok, err := jwt.NewGenerator(secret, issuer, time.Hour).Generate("ops", jwt.ScopeLogsRead)
	assert.NilError(t, err)

	status, body := e.do(t, http.MethodGet, "/v1/logs?level=info&limit=10", nil, "Authorization", "Bearer "+tok)
	assert.Equal(t, status, http.StatusOK)
	data := body["data"].([]any)
	assert.Equal(t, len(data), 1)
	assert.Equal(t, data[0].(map[string]any)["message"], "user created")

	status, _ = e.do(t, http.MethodGet, "/v1/logs?level=fatal", nil, "Authorization", "Bearer "+tok)
	assert.Equal(t, status, http.StatusBadRequest)
}

func TestRegisterUserLostRace(t *testing.T) {
	e := newEnv(t, nil, nil)
	e.store.insertErr = errors.Join(user.ErrEmailTaken, errors.New("23505"))

	status, body := e.do(t, http.MethodPost, "/v1/users/", validBody())
	assert.Equal(t, status, http.StatusUnprocessableEntity)
	assert.Equal(t, body["errors"].(map[string]any)["email"], "The email has already been taken.")
	assert.Check(t, is.Len(e.logs.entries, 0))
}

func TestRegisterUserPasswordOverBcryptLimit(t *testing.T) {
	e := newEnv(t, nil, nil)
	b := validBody()
	// 40 runes, 80 bytes
	b["password"] = strings.Repeat("ñ", 40)

	status, body := e.do(t, http.MethodPost, "/v1/users/", b)
	assert.Equal(t, status, http.StatusUnprocessableEntity)
	assert.Equal(t, body["errors"].(map[string]any)["password"], "The password may not be greater than 72 bytes.")
	assert.Check(t, is.Len(e.store.rows, 0))
	assert.Check(t, is.Len(e.logs.entries, 0))
}

func TestRegisterUserNumericFields(t *testing.T) {
	e := newEnv(t, nil, nil)
	b := validBody()
	b["insurance"] = "5"
	b["product"] = 7

	status, body := e.do(t, http.MethodPost, "/v1/users/", b)
	assert.Equal(t, status, http.StatusCreated)
	data := body["data"].(map[string]any)
	assert.Equal(t, data["insurance"], float64(5))
	assert.Equal(t, data["product"], float64(7))
	assert.Equal(t, *e.store.rows["ana@x.com"].Insurance, int64(5))

	for _, bad := range []any{"abc", 1.5, true} {
		e := newEnv(t, nil, nil)
		b := validBody()
		b["product"] = bad

		status, body := e.do(t, http.MethodPost, "/v1/users/", b)
		assert.Equal(t, status, http.StatusUnprocessableEntity, "product %v", bad)
		assert.Equal(t, body["errors"].(map[string]any)["product"], "The product must be an integer.")
		assert.Check(t, is.Len(e.store.rows, 0))
	}
}

func TestListLogsEmptyHasDataArray(t *testing.T) {
	e := newEnv(t, nil, nil)
	tok, err := jwt.NewGenerator(secret, issuer, time.Hour).Generate("ops", jwt.ScopeLogsRead)
	assert.NilError(t, err)

	status, body := e.do(t, http.MethodGet, "/v1/logs?level=error", nil, "Authorization", "Bearer "+tok)
	assert.Equal(t, status, http.StatusOK)
	data, ok := body["data"].([]any)
	assert.Assert(t, ok, "body: %v", body)
	assert.Check(t, is.Len(data, 0))
}
