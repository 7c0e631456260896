package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/haguru/raikiri/config"
	"github.com/haguru/raikiri/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configTemplate = `service_name: raikiri_test
loglevel: error
host: 127.0.0.1
port: "0"
private_key_path: %s
session_ttl: 1m
secure_cookies: false
rate_limit:
  requests_per_second: 1
  burst: 2
database:
  driver: %s
  sslmode: disable
  connect_timeout: 1s
  query_timeout: 1s
  run_migrations: false
  secrets_file: ""
`

func writeConfig(t *testing.T, driver string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(configTemplate, filepath.Join(dir, "key.pem"), driver)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func secretsLookup(values map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

var allSecrets = map[string]string{
	"DB_HOST":     "localhost",
	"DB_PORT":     "5432",
	"DB_USER":     "raikiri",
	"DB_PASSWORD": "secret",
	"DB_NAME":     "energia",
}

func TestNewApp(t *testing.T) {
	app, err := newApp(writeConfig(t, "postgres"), secretsLookup(allSecrets))
	require.NoError(t, err)
	require.NotNil(t, app.Server)
	assert.FileExists(t, app.Config.PrivateKeyPath)

	handler := app.Server.(*server.Server).Handler()

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "health", method: http.MethodGet, target: "/healthz", wantStatus: http.StatusOK, wantBody: `"ok"`},
		{name: "metrics", method: http.MethodGet, target: "/metrics", wantStatus: http.StatusOK, wantBody: "raikiri_test_login_requests_total"},
		{name: "login view", method: http.MethodGet, target: "/", wantStatus: http.StatusOK, wantBody: `action="/login"`},
		{name: "dashboard api needs session", method: http.MethodGet, target: "/api/dashboard", wantStatus: http.StatusUnauthorized},
		{name: "unknown path", method: http.MethodGet, target: "/missing", wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestNewApp_RateLimitsSignup(t *testing.T) {
	app, err := newApp(writeConfig(t, "pgx"), secretsLookup(allSecrets))
	require.NoError(t, err)
	handler := app.Server.(*server.Server).Handler()

	var codes []int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusBadRequest, http.StatusBadRequest, http.StatusTooManyRequests}, codes)
}

func TestNewApp_MissingSecrets(t *testing.T) {
	partial := map[string]string{"DB_HOST": "localhost", "DB_PORT": "5432", "DB_USER": "raikiri"}

	_, err := newApp(writeConfig(t, "postgres"), secretsLookup(partial))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingSecrets)
	assert.Contains(t, err.Error(), "DB_NAME, DB_PASSWORD")
}

func TestNewApp_InvalidConfig(t *testing.T) {
	_, err := newApp(writeConfig(t, "mysql"), secretsLookup(allSecrets))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgInvalidConfig)

	_, err = newApp(filepath.Join(t.TempDir(), "absent.yaml"), secretsLookup(allSecrets))
	assert.Error(t, err)
}

func TestApp_Run_StopsOnCancel(t *testing.T) {
	app, err := newApp(writeConfig(t, "postgres"), secretsLookup(allSecrets))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout):
		t.Fatal("app did not stop")
	}
}
