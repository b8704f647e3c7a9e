package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// Per-client token buckets in front of the report API. Buckets live in
// process memory, so every replica enforces its own budget.

const (
	ctxKeyRateBypass = "rate.bypass"
	defaultBucketTTL = 10 * time.Minute
)

// rateLimited is labelled by bucket namespace ("key" or "ip"), never by the
// key itself.
var rateLimited = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "insights_http_rate_limited_total",
		Help: "Requests rejected by the rate limiter.",
	},
	[]string{"bucket"},
)

func init() {
	prometheus.MustRegister(rateLimited)
}

type keyFunc func(*gin.Context) string

// KeyByClient buckets by the value of header (e.g. the X-API-Key of a
// dashboard deployment) and falls back to the client IP. Keys are namespaced
// as "key:<value>" and "ip:<addr>".
func KeyByClient(header string) keyFunc {
	return func(c *gin.Context) string {
		if header == "" {
			return "ip:" + c.ClientIP()
		}
		if v := strings.TrimSpace(c.GetHeader(header)); v != "" {
			return "key:" + v
		}
		return "ip:" + c.ClientIP()
	}
}

// BypassPaths exempts the exact paths given from the limiter. Install it
// before RateLimiter.Handler.
func BypassPaths(paths ...string) gin.HandlerFunc {
	skip := make(map[string]bool, len(paths))
	for _, p := range paths {
		skip[p] = true
	}
	return func(c *gin.Context) {
		if skip[c.Request.URL.Path] {
			c.Set(ctxKeyRateBypass, true)
		}
		c.Next()
	}
}

// IsRateBypass reports whether BypassPaths marked this request.
func IsRateBypass(c *gin.Context) bool {
	b, _ := c.Value(ctxKeyRateBypass).(bool)
	return b
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimiter holds one token bucket per client key. Safe for concurrent use.
type RateLimiter struct {
	limit rate.Limit
	burst int
	key   keyFunc
	ttl   time.Duration
	now   func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
	swept   time.Time
}

// NewRateLimiter refills rps tokens per second up to burst (at least 1).
func NewRateLimiter(rps float64, burst int, key keyFunc) *RateLimiter {
	return &RateLimiter{
		limit:   rate.Limit(rps),
		burst:   max(burst, 1),
		key:     key,
		ttl:     defaultBucketTTL,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

// bucketFor returns the limiter for key. Buckets idle for ttl are swept at
// most once per ttl, before the lookup, so a stale bucket is replaced rather
// than revived.
func (rl *RateLimiter) bucketFor(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.swept) >= rl.ttl {
		for k, b := range rl.buckets {
			if now.Sub(b.seen) >= rl.ttl {
				delete(rl.buckets, k)
			}
		}
		rl.swept = now
	}

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(rl.limit, rl.burst)}
		rl.buckets[key] = b
	}
	b.seen = now
	return b.lim
}

func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.buckets)
}

// admit takes a token if one is available at now. Otherwise it gives the
// token back and reports how long the caller would have had to wait; zero
// means the bucket can never serve the request.
func admit(lim *rate.Limiter, now time.Time) (bool, time.Duration) {
	r := lim.ReserveN(now, 1)
	if !r.OK() {
		return false, 0
	}
	wait := r.DelayFrom(now)
	if wait == 0 {
		return true, 0
	}
	r.CancelAt(now)
	return false, wait
}

// retryAfter renders wait as whole seconds, rounded up, never below 1.
func retryAfter(wait time.Duration) string {
	s := int64(math.Ceil(wait.Seconds()))
	if s < 1 {
		s = 1
	}
	return strconv.FormatInt(s, 10)
}

// Handler rejects requests over budget with 429, a Retry-After hint and the
// usual error envelope.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsRateBypass(c) {
			c.Next()
			return
		}

		key := rl.key(c)
		now := rl.now()
		allowed, wait := admit(rl.bucketFor(key, now), now)
		if allowed {
			c.Next()
			return
		}

		ns, _, _ := strings.Cut(key, ":")
		rateLimited.WithLabelValues(ns).Inc()
		LoggerFrom(c).Debug().Str("bucket", ns).Dur("wait", wait).Msg("rate limited")

		rid, _ := c.Get(requestIDKey)
		c.Header("Retry-After", retryAfter(wait))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"request_id": asString(rid),
			"code":       "rate_limited",
			"message":    "rate limit exceeded",
		})
	}
}
