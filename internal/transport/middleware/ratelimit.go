package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/heartmarshall/readinglist-backend/internal/transport/problem"
	"github.com/heartmarshall/readinglist-backend/pkg/ctxutil"
)

// RateLimiter implements per-client fixed-window rate limiting. Each client
// key gets a counter that resets when its window elapses; exactly limit
// requests pass per window and the next one is denied until reset.
type RateLimiter struct {
	limit   int
	period  time.Duration
	windows sync.Map // map[string]*window
	stop    chan struct{}
}

type window struct {
	mu    sync.Mutex
	start time.Time
	count int
}

// NewRateLimiter creates a rate limiter allowing limit requests per period,
// with background cleanup of stale windows. Call Stop on shutdown.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{limit: limit, period: period, stop: make(chan struct{})}
	go rl.cleanup()
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Allow reports whether another request fits in the caller's current window.
// On denial it returns the time until the window resets, rounded up to a
// whole second so it can be sent verbatim in a Retry-After header.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	now := time.Now()
	val, _ := rl.windows.LoadOrStore(key, &window{start: now})
	w := val.(*window)

	w.mu.Lock()
	defer w.mu.Unlock()

	if now.Sub(w.start) >= rl.period {
		w.start = now
		w.count = 0
	}
	if w.count < rl.limit {
		w.count++
		return true, 0
	}

	retry := w.start.Add(rl.period).Sub(now)
	if rem := retry % time.Second; rem > 0 {
		retry += time.Second - rem
	}
	if retry < time.Second {
		retry = time.Second
	}
	return false, retry
}

// Limit returns middleware that applies the rate limit per client key and
// stores the key in the request context for downstream attribution.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientKey(r)
			ok, retryAfter := rl.Allow(key)
			if !ok {
				secs := int(retryAfter / time.Second)
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				problem.Write(w, problem.RateLimitExceeded(secs, r.URL.Path))
				return
			}
			ctx := ctxutil.WithClientKey(r.Context(), key)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientKey identifies the caller. The first X-Forwarded-For address wins
// when present, otherwise the host part of RemoteAddr.
func ClientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.IndexByte(xff, ','); i >= 0 {
			xff = xff[:i]
		}
		if key := strings.TrimSpace(xff); key != "" {
			return key
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) cleanup() {
	interval := rl.period
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-2 * rl.period)
			rl.windows.Range(func(key, value any) bool {
				w := value.(*window)
				w.mu.Lock()
				stale := w.start.Before(cutoff)
				w.mu.Unlock()
				if stale {
					rl.windows.Delete(key)
				}
				return true
			})
		}
	}
}
