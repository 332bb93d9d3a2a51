package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/internal/transport/dataloader"
	"github.com/heartmarshall/fairplay-backend/internal/transport/httperr"
	"github.com/heartmarshall/fairplay-backend/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

// listResponse wraps collections as {"data": [...]}.
type listResponse[T any] struct {
	Data []T `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeList[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, listResponse[T]{Data: items})
}

// writeError renders err and flags the request transaction for rollback.
// Partial failures keep the writes that already happened.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	if !domain.IsPartial(err) {
		ctxutil.MarkRollback(r.Context())
	}

	kind, detail := httperr.Classify(err)
	if kind.Status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	httperr.Write(w, kind, detail)
}

// decodeJSON reads a JSON body into dst. Validation errors raised while
// decoding (bad filter operators) are passed through unchanged.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return ve
		}
		if errors.Is(err, io.EOF) {
			return domain.WithDetail(domain.ErrValidation, "Request body is empty")
		}
		return domain.WithDetail(domain.ErrValidation, "Invalid request body")
	}
	return nil
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	raw := r.PathValue(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &domain.InvalidParameterError{Name: name, Value: raw}
	}
	return id, nil
}

// queryID parses a required UUID query parameter.
func queryID(r *http.Request, name string) (uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &domain.InvalidParameterError{Name: name, Value: raw}
	}
	return id, nil
}

// queryUint parses an optional non-negative integer query parameter.
func queryUint(r *http.Request, name string) (*uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, &domain.InvalidParameterError{Name: name, Value: raw}
	}
	return &v, nil
}

// queryTime parses an optional RFC 3339 timestamp query parameter.
func queryTime(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, &domain.InvalidParameterError{Name: name, Value: raw}
	}
	return &t, nil
}

type scoreRequest struct {
	Score *int `json:"score"`
}

func (s scoreRequest) value() (int, error) {
	if s.Score == nil {
		return 0, domain.NewValidationError("score", "is required")
	}
	return *s.Score, nil
}

// withPathID parses the {id} path value and calls fn with it.
func withPathID[T any](r *http.Request, fn func(context.Context, uuid.UUID) (T, error)) (T, error) {
	id, err := pathID(r, "id")
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(r.Context(), id)
}

// deleteByID parses {id}, calls fn and answers 204.
func deleteByID(w http.ResponseWriter, r *http.Request, log *slog.Logger, fn func(context.Context, uuid.UUID) error) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, log, err)
		return
	}
	if err := fn(r.Context(), id); err != nil {
		writeError(w, r, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// userNames resolves author names through the request's loaders. Without
// loaders it returns an empty map.
func userNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	loaders := dataloader.FromContext(ctx)
	if loaders == nil || len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}
	return loaders.UserNames(ctx, dedupe(ids))
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
