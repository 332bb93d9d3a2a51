// Package httperr renders errors as JSON response bodies of the form
// {"exception_detail": ..., "exception": ..., "detail": ...}.
package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

// Body is the JSON error response.
type Body struct {
	ExceptionDetail string `json:"exception_detail"`
	Exception       string `json:"exception"`
	Detail          string `json:"detail"`
}

// Kind is an error class. Path is the dotted class hierarchy reported in
// exception_detail; its last element is the exception name.
type Kind struct {
	Status int
	Path   string
}

var (
	NotFound         = Kind{http.StatusNotFound, "HTTPError.NotFoundError"}
	Request          = Kind{http.StatusBadRequest, "HTTPError.RequestError"}
	InvalidParameter = Kind{http.StatusBadRequest, "HTTPError.RequestError.InvalidParameterError"}
	Duplicate        = Kind{http.StatusConflict, "HTTPException.DuplicateConstraint"}
	Conflict         = Kind{http.StatusConflict, "HTTPError.ConflictError"}
	ACL              = Kind{http.StatusUnauthorized, "HTTPError.ACLError"}
	Forbidden        = Kind{http.StatusForbidden, "HTTPError.RequestForbidden"}
	TooManyRequests  = Kind{http.StatusTooManyRequests, "HTTPError.TooManyRequests"}
	Service          = Kind{http.StatusInternalServerError, "HTTPError.ServiceError"}
)

// Body builds the response body for detail.
func (k Kind) Body(detail string) Body {
	name := k.Path
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return Body{ExceptionDetail: k.Path, Exception: name, Detail: detail}
}

// Write sends detail as a k error response.
func Write(w http.ResponseWriter, k Kind, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(k.Status)
	json.NewEncoder(w).Encode(k.Body(detail)) //nolint:errcheck
}

// Classify maps err to its error kind and client-facing detail. Unknown
// errors become service errors with a generic detail.
func Classify(err error) (Kind, string) {
	var (
		pe *domain.PartialError
		ip *domain.InvalidParameterError
		ve *domain.ValidationError
	)

	switch {
	case errors.As(err, &pe):
		return Service, fmt.Sprintf("Failed to %s", pe.Op)
	case errors.As(err, &ip):
		return InvalidParameter, fmt.Sprintf("Invalid parameter: %s", ip.Name)
	case errors.As(err, &ve):
		return Request, validationDetail(ve)
	case errors.Is(err, domain.ErrValidation):
		return Request, detailOr(err, "Invalid request")
	case errors.Is(err, domain.ErrNotFound):
		return NotFound, detailOr(err, "Not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		return Duplicate, detailOr(err, "Resource already exists")
	case errors.Is(err, domain.ErrConflict):
		return Conflict, detailOr(err, "Conflict")
	case errors.Is(err, domain.ErrUnauthorized):
		return ACL, detailOr(err, "Not authenticated")
	case errors.Is(err, domain.ErrForbidden):
		return Forbidden, detailOr(err, "User not permitted to access this resource")
	default:
		return Service, "Internal server error"
	}
}

func detailOr(err error, fallback string) string {
	var de *domain.DetailError
	if errors.As(err, &de) {
		return de.Detail
	}
	return fallback
}

func validationDetail(ve *domain.ValidationError) string {
	parts := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}
