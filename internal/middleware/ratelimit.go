// aykutspohr | 2026
// ratelimit.go

package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/aykutspohrdev/spohr-portfolio-api/internal/config"
)

// RateLimitOptions tunes the limiter. The zero value of KeyFunc means
// per-client-IP keying; the zero value of BypassFunc skips CORS
// preflights and health probes, which must never be throttled.
type RateLimitOptions struct {
	Limit      redis_rate.Limit
	KeyFunc    func(*http.Request) string
	FailOpen   bool
	BypassFunc func(*http.Request) bool
	OnLimited  func(http.ResponseWriter, *http.Request, *redis_rate.Result)
}

// LimitFromConfig converts the configured request budget and window
// into a redis_rate limit.
func LimitFromConfig(cfg config.RateLimitConfig) redis_rate.Limit {
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}

	return redis_rate.Limit{
		Rate:   cfg.Requests,
		Burst:  cfg.Burst,
		Period: window,
	}
}

type RateLimiter struct {
	limiter  *redis_rate.Limiter
	fallback *localLimiter
	opts     RateLimitOptions
}

func NewRateLimiter(rdb *redis.Client, opts RateLimitOptions) *RateLimiter {
	if opts.KeyFunc == nil {
		opts.KeyFunc = KeyByIP
	}
	if opts.BypassFunc == nil {
		opts.BypassFunc = bypassInfra
	}

	return &RateLimiter{
		limiter:  redis_rate.NewLimiter(rdb),
		fallback: newLocalLimiter(opts.Limit),
		opts:     opts,
	}
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.opts.BypassFunc(r) {
			next.ServeHTTP(w, r)
			return
		}

		key := rl.opts.KeyFunc(r)
		res, err := rl.allow(r.Context(), key)
		if err != nil {
			if rl.opts.FailOpen {
				slog.Warn("rate limiter unavailable, failing open",
					"error", err,
					"key", key,
				)
				next.ServeHTTP(w, r)
				return
			}
			http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
			return
		}

		setRateLimitHeaders(w, res, rl.opts.Limit)

		if res.Allowed == 0 {
			if rl.opts.OnLimited != nil {
				rl.opts.OnLimited(w, r, res)
				return
			}
			writeRateLimitExceeded(w, res)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allow consults redis first and falls back to the in-process limiter
// when redis is unreachable, so a redis outage degrades limiting
// accuracy instead of taking the API down.
func (rl *RateLimiter) allow(
	ctx context.Context,
	key string,
) (*redis_rate.Result, error) {
	res, err := rl.limiter.Allow(ctx, key, rl.opts.Limit)
	if err != nil {
		return rl.fallback.allow(key)
	}
	return res, nil
}

// bypassInfra exempts preflight requests and the health endpoints.
func bypassInfra(r *http.Request) bool {
	if r.Method == http.MethodOptions {
		return true
	}

	switch r.URL.Path {
	case "/healthz", "/livez", "/readyz":
		return true
	}

	return false
}

func KeyByIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		ip := strings.TrimSpace(ips[len(ips)-1])
		return "ratelimit:ip:" + ip
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return "ratelimit:ip:" + xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	return "ratelimit:ip:" + ip
}

func setRateLimitHeaders(
	w http.ResponseWriter,
	res *redis_rate.Result,
	limit redis_rate.Limit,
) {
	h := w.Header()

	h.Set("X-RateLimit-Limit", strconv.Itoa(limit.Rate))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(
		time.Now().Add(res.ResetAfter).Unix(), 10))

	windowSecs := int(limit.Period.Seconds())
	h.Set("RateLimit-Policy", fmt.Sprintf(`%d;w=%d`, limit.Rate, windowSecs))
	h.Set(
		"RateLimit",
		fmt.Sprintf(`%d;t=%d`, res.Remaining, int(res.ResetAfter.Seconds())),
	)
}

func writeRateLimitExceeded(w http.ResponseWriter, res *redis_rate.Result) {
	retryAfter := int(res.RetryAfter.Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}

	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)

	response := map[string]any{
		"success": false,
		"error": map[string]any{
			"code": "RATE_LIMITED",
			"message": fmt.Sprintf(
				"Rate limit exceeded. Retry after %d seconds.",
				retryAfter,
			),
		},
	}

	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(response)
}

// localLimiter is the in-process fallback. It applies the same request
// budget per key using token buckets and evicts idle entries so a scan
// of distinct client IPs cannot grow the map unbounded.
type localLimiter struct {
	mu      sync.Mutex
	entries map[string]*localEntry
	limit   redis_rate.Limit
	perSec  float64
}

type localEntry struct {
	bucket   *rate.Limiter
	lastSeen time.Time
}

const (
	localSweepInterval = 5 * time.Minute
	localEntryTTL      = 10 * time.Minute
)

func newLocalLimiter(limit redis_rate.Limit) *localLimiter {
	l := &localLimiter{
		entries: make(map[string]*localEntry),
		limit:   limit,
		perSec:  float64(limit.Rate) / limit.Period.Seconds(),
	}
	go l.sweep()
	return l
}

func (l *localLimiter) sweep() {
	ticker := time.NewTicker(localSweepInterval)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-localEntryTTL)

		l.mu.Lock()
		for key, entry := range l.entries {
			if entry.lastSeen.Before(cutoff) {
				delete(l.entries, key)
			}
		}
		l.mu.Unlock()
	}
}

func (l *localLimiter) allow(key string) (*redis_rate.Result, error) {
	l.mu.Lock()
	entry, ok := l.entries[key]
	if !ok {
		entry = &localEntry{
			bucket: rate.NewLimiter(rate.Limit(l.perSec), l.limit.Burst),
		}
		l.entries[key] = entry
	}
	entry.lastSeen = time.Now()
	l.mu.Unlock()

	allowed := entry.bucket.Allow()

	remaining := int(entry.bucket.Tokens())
	if remaining < 0 {
		remaining = 0
	}

	refill := time.Duration(float64(time.Second) / l.perSec)

	res := &redis_rate.Result{
		Limit:      l.limit,
		Remaining:  remaining,
		ResetAfter: refill,
		RetryAfter: -1,
	}
	if allowed {
		res.Allowed = 1
	} else {
		res.RetryAfter = refill
	}

	return res, nil
}
