package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/fairplay-backend/internal/transport/httperr"
	"github.com/heartmarshall/fairplay-backend/pkg/ctxutil"
)

type fakeTx struct {
	calls     int
	rolled    bool
	commitErr error
}

func (f *fakeTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		f.rolled = true
		return err
	}
	return f.commitErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestTransaction_CommitFlushesResponse(t *testing.T) {
	tx := &fakeTx{}
	h := Transaction(tx, discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "/posts/1")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/posts", nil))

	assert.Equal(t, 1, tx.calls)
	assert.False(t, tx.rolled)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/posts/1", rec.Header().Get("Location"))
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
}

func TestTransaction_MarkRollbackKeepsResponse(t *testing.T) {
	tx := &fakeTx{}
	h := Transaction(tx, discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxutil.MarkRollback(r.Context())
		httperr.Write(w, httperr.Conflict, "Already a member")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/forums/1/members", nil))

	assert.True(t, tx.rolled)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Already a member")
}

func TestTransaction_CommitFailure(t *testing.T) {
	tx := &fakeTx{commitErr: errors.New("connection reset")}
	h := Transaction(tx, discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/posts/1", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body httperr.Body
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "HTTPError.ServiceError", body.ExceptionDetail)
}

func TestTransaction_SafeMethodsSkipTx(t *testing.T) {
	tx := &fakeTx{}
	h := Transaction(tx, discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/posts", nil))

	assert.Zero(t, tx.calls)
}
