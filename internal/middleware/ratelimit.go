package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"vet-clinic/internal/platform/metrics"
	"vet-clinic/internal/platform/web"

	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL    = 3 * time.Minute
	limiterSweepEvery = time.Minute
	defaultRatePerSec = 10
	defaultRateBurst  = 20
)

type RateLimitOptions struct {
	RPS   float64
	Burst int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter: token bucket por IP. Las entradas viejas se barren en el mismo request,
// así no queda una goroutine suelta por cada router.
type rateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func newRateLimiter(opts RateLimitOptions) *rateLimiter {
	if opts.RPS <= 0 {
		opts.RPS = defaultRatePerSec
	}
	if opts.Burst <= 0 {
		opts.Burst = defaultRateBurst
	}
	return &rateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(opts.RPS),
		burst:    opts.Burst,
		now:      time.Now,
	}
}

func (l *rateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= limiterSweepEvery {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > limiterIdleTTL {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// RateLimit corta con 429 a las IPs que agotan su bucket.
// Va después de chimw.RealIP para que RemoteAddr sea la IP del cliente.
func RateLimit(opts RateLimitOptions) func(http.Handler) http.Handler {
	l := newRateLimiter(opts)
	retryAfter := strconv.Itoa(int(max(1, 1/float64(l.limit))))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.allow(clientIP(r)) {
				metrics.RateLimitedTotal.Inc()
				w.Header().Set("Retry-After", retryAfter)
				web.WriteMessage(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
