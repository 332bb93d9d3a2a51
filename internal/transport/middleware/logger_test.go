package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/fairplay-backend/pkg/ctxutil"
)

func serveLogged(t *testing.T, status int, req *http.Request) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "INFO"},
		{http.StatusNotFound, "WARN"},
		{http.StatusConflict, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			entry := serveLogged(t, tt.status, httptest.NewRequest(http.MethodGet, "/forums", nil))

			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "http.request", entry["msg"])
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, "/forums", entry["path"])
			assert.Equal(t, http.MethodGet, entry["method"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestLogger_ContextFields(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/posts/1", nil)
	ctx := ctxutil.WithRequestID(req.Context(), "req-42")
	ctx = ctxutil.WithUserID(ctx, userID)

	entry := serveLogged(t, http.StatusNoContent, req.WithContext(ctx))

	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, userID.String(), entry["user_id"])
}

func TestLogger_AnonymousHasNoUserID(t *testing.T) {
	entry := serveLogged(t, http.StatusOK, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotContains(t, entry, "user_id")
}

func TestStatusWriter_DefaultsTo200(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec, status: http.StatusOK}

	_, err := sw.Write([]byte("ok"))
	require.NoError(t, err)
	sw.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusOK, sw.status)
}
