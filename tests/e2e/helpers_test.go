//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/fairplay-backend/internal/app"
	"github.com/heartmarshall/fairplay-backend/internal/config"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		Certificates: config.CertificateConfig{Dir: t.TempDir()},
	}
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	srv, err := app.NewServer(testConfig(t), pool, logger)
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return &testServer{URL: ts.URL, Client: ts.Client(), Pool: pool}
}

// do sends a JSON request and decodes a JSON object response. A nil body
// sends no payload.
func (ts *testServer) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return resp.StatusCode, out
}

// list extracts the "data" array from a list response.
func list(t *testing.T, body map[string]any) []map[string]any {
	t.Helper()
	raw, ok := body["data"].([]any)
	require.True(t, ok, "expected data array, got %v", body)

	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		require.True(t, ok)
		out = append(out, m)
	}
	return out
}

func str(t *testing.T, m map[string]any, key string) string {
	t.Helper()
	v, ok := m[key].(string)
	require.True(t, ok, "expected string %q in %v", key, m)
	return v
}
