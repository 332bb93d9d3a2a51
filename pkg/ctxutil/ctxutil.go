// Package ctxutil carries request-scoped values through context.Context.
package ctxutil

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	requestIDKey ctxKey = "request_id"
	txOutcomeKey ctxKey = "tx_outcome"
)

// WithUserID stores the authenticated user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// ActorFromCtx returns the authenticated user, or nil for anonymous requests.
func ActorFromCtx(ctx context.Context) *uuid.UUID {
	id, ok := UserIDFromCtx(ctx)
	if !ok {
		return nil
	}
	return &id
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// TxOutcome records whether the request transaction should be rolled back.
// It is shared between the transaction middleware and the handler.
type TxOutcome struct {
	rollback atomic.Bool
}

// Rollback reports whether MarkRollback was called.
func (o *TxOutcome) Rollback() bool { return o.rollback.Load() }

// WithTxOutcome attaches a fresh outcome to the context.
func WithTxOutcome(ctx context.Context) (context.Context, *TxOutcome) {
	o := &TxOutcome{}
	return context.WithValue(ctx, txOutcomeKey, o), o
}

// MarkRollback flags the request transaction for rollback. It is a no-op
// outside a request transaction.
func MarkRollback(ctx context.Context) {
	if o, ok := ctx.Value(txOutcomeKey).(*TxOutcome); ok {
		o.rollback.Store(true)
	}
}
