package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalPath(t *testing.T) {
	id := uuid.NewString()
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"/posts", "/posts"},
		{"/posts/" + id, "/posts/{id}"},
		{"/forums/" + id + "/messages/", "/forums/{id}/messages"},
		{"/users/" + id + "/conversations/" + id, "/users/{id}/conversations/{id}"},
		{"/games/leaderboard", "/games/leaderboard"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalPath(tt.in), tt.in)
	}
}

func TestMetrics_Middleware(t *testing.T) {
	m := NewMetrics(false)
	h := m.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "missing") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))

	for _, p := range []string{"/posts/" + uuid.NewString(), "/posts/" + uuid.NewString(), "/posts/missing"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, MetricsPath, nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/posts/{id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/posts/missing", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
	assert.Equal(t, 2, testutil.CollectAndCount(m.requests))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics(false)
	m.requests.WithLabelValues(http.MethodPost, "/games/scores", "201").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, MetricsPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `fairplay_http_requests_total{method="POST",path="/games/scores",status="201"} 1`)
}
