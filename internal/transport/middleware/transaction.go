package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/fairplay-backend/internal/transport/httperr"
	"github.com/heartmarshall/fairplay-backend/pkg/ctxutil"
)

// TxRunner runs fn inside a database transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

var errRollbackRequested = errors.New("rollback requested")

// Transaction wraps each mutating request in one database transaction.
// The response is buffered and sent only after commit. A handler that
// calls ctxutil.MarkRollback gets its writes discarded while its response
// is still delivered. Safe methods pass straight through.
func Transaction(tx TxRunner, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			buf := newBufferedWriter()
			err := tx.RunInTx(r.Context(), func(ctx context.Context) error {
				ctx, outcome := ctxutil.WithTxOutcome(ctx)
				next.ServeHTTP(buf, r.WithContext(ctx))
				if outcome.Rollback() {
					return errRollbackRequested
				}
				return nil
			})
			if err != nil && !errors.Is(err, errRollbackRequested) {
				logger.ErrorContext(r.Context(), "request transaction failed",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("error", err.Error()),
				)
				httperr.Write(w, httperr.Service, "Internal server error")
				return
			}
			buf.flush(w)
		})
	}
}

// bufferedWriter holds the response until the transaction outcome is known.
type bufferedWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newBufferedWriter() *bufferedWriter {
	return &bufferedWriter{header: make(http.Header)}
}

func (b *bufferedWriter) Header() http.Header { return b.header }

func (b *bufferedWriter) WriteHeader(code int) {
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *bufferedWriter) flush(w http.ResponseWriter) {
	dst := w.Header()
	for k, v := range b.header {
		dst[k] = v
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	w.WriteHeader(b.status)
	_, _ = w.Write(b.body.Bytes())
}
