package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the probe endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, now: time.Now}
}

// HealthResponse is the JSON body of /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

type pingResponse struct {
	Msg string `json:"msg"`
}

// Ping handles GET /ping.
func (h *HealthHandler) Ping(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, pingResponse{Msg: "pong"})
}

// Live handles GET /live. It never touches dependencies.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready handles GET /ready: 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.checkDB(r.Context())
	writeJSON(w, statusCode(db.Status), HealthResponse{Status: db.Status, Timestamp: h.now()})
}

// Health handles GET /health with per-component status and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.checkDB(r.Context())
	writeJSON(w, statusCode(db.Status), HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"database": db},
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) checkDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusCode(status string) int {
	if status == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
