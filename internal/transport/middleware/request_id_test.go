package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/fairplay-backend/pkg/ctxutil"
)

func serveRequestID(incoming string) (ctxID string, rec *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	rec = httptest.NewRecorder()
	RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = ctxutil.RequestIDFromCtx(r.Context())
	})).ServeHTTP(rec, req)
	return ctxID, rec
}

func TestRequestID_ReuseIncoming(t *testing.T) {
	incoming := uuid.NewString()
	got, rec := serveRequestID(incoming)

	assert.Equal(t, incoming, got)
	assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_Generated(t *testing.T) {
	got, rec := serveRequestID("")

	_, err := uuid.Parse(got)
	assert.NoError(t, err)
	assert.Equal(t, got, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_TooLongReplaced(t *testing.T) {
	incoming := strings.Repeat("x", maxRequestIDLen+1)
	got, _ := serveRequestID(incoming)

	assert.NotEqual(t, incoming, got)
	assert.NotEmpty(t, got)
}
