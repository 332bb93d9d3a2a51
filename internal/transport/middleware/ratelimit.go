package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/fairplay-backend/internal/transport/httperr"
)

const limiterIdleTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	clients sync.Map // map[string]*client
	stop    chan struct{}
	once    sync.Once
	now     func() time.Time
}

type client struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// NewRateLimiter allows perMinute requests per IP with the given burst and
// starts a background sweep of idle clients. Call Stop on shutdown.
func NewRateLimiter(perMinute, burst int, cleanupInterval time.Duration) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	rl := &RateLimiter{
		limit: rate.Limit(float64(perMinute) / 60.0),
		burst: burst,
		stop:  make(chan struct{}),
		now:   time.Now,
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Middleware rejects requests over the limit with a 429 TooManyRequests body.
func (rl *RateLimiter) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := rl.client(clientIP(r))

			c.mu.Lock()
			now := rl.now()
			c.lastSeen = now
			res := c.limiter.ReserveN(now, 1)
			delay := res.DelayFrom(now)
			if delay > 0 {
				res.CancelAt(now)
			}
			c.mu.Unlock()

			if !res.OK() || delay > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				httperr.Write(w, httperr.TooManyRequests, "Rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) client(ip string) *client {
	if v, ok := rl.clients.Load(ip); ok {
		return v.(*client)
	}
	v, _ := rl.clients.LoadOrStore(ip, &client{
		limiter:  rate.NewLimiter(rl.limit, rl.burst),
		lastSeen: rl.now(),
	})
	return v.(*client)
}

func (rl *RateLimiter) sweep() {
	now := rl.now()
	rl.clients.Range(func(key, value any) bool {
		c := value.(*client)
		c.mu.Lock()
		idle := now.Sub(c.lastSeen)
		c.mu.Unlock()
		if idle > limiterIdleTTL {
			rl.clients.Delete(key)
		}
		return true
	})
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
