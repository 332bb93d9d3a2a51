package rest

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
	"github.com/heartmarshall/fairplay-backend/internal/service/certificate"
)

type certificateService interface {
	CreateCertificate(ctx context.Context, input certificate.CreateInput) (*domain.Certificate, error)
	GetCertificate(ctx context.Context, id uuid.UUID) (*domain.Certificate, error)
	ListUserCertificates(ctx context.Context, userID uuid.UUID) ([]*domain.Certificate, error)
	CertificateFile(ctx context.Context, id uuid.UUID) (string, error)
}

// CertificateHandler serves /certificates.
type CertificateHandler struct {
	svc certificateService
	log *slog.Logger
}

// NewCertificateHandler creates a CertificateHandler.
func NewCertificateHandler(svc certificateService, logger *slog.Logger) *CertificateHandler {
	return &CertificateHandler{svc: svc, log: logger.With("handler", "certificate")}
}

// Create handles POST /certificates. Issuing twice for the same module
// quiz returns the first certificate.
func (h *CertificateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input certificate.CreateInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	c, err := h.svc.CreateCertificate(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Get handles GET /certificates/{id}.
func (h *CertificateHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := withPathID(r, h.svc.GetCertificate)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// ListByUser handles GET /certificates/user/{user_id}.
func (h *CertificateHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	certs, err := h.svc.ListUserCertificates(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeList(w, certs)
}

// Download handles GET /certificates/download/{id} and streams the PNG.
func (h *CertificateHandler) Download(w http.ResponseWriter, r *http.Request) {
	path, err := withPathID(r, h.svc.CertificateFile)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	http.ServeFile(w, r, path)
}
