package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgErrors "taskflow/pkg/errors"
	"taskflow/pkg/response"
)

const (
	defaultRateLimit   = 10
	defaultRateBurst   = 20
	defaultRateClients = 1024

	// Idle buckets expire so a one-off client does not pin a slot.
	bucketTTL = 10 * time.Minute
)

// ipLimiter keeps one token bucket per client IP. The bucket cache is
// bounded and expiring, so the limiter's memory stays flat under churn.
type ipLimiter struct {
	mu      sync.Mutex
	buckets *expirable.LRU[string, *rate.Limiter]
	limit   rate.Limit
	burst   int
}

func newIPLimiter(cfg Config) *ipLimiter {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = defaultRateLimit
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = defaultRateBurst
	}
	if cfg.RateClients <= 0 {
		cfg.RateClients = defaultRateClients
	}

	return &ipLimiter{
		buckets: expirable.NewLRU[string, *rate.Limiter](cfg.RateClients, nil, bucketTTL),
		limit:   rate.Limit(cfg.RateLimit),
		burst:   cfg.RateBurst,
	}
}

func (il *ipLimiter) allow(ip string) bool {
	il.mu.Lock()
	lim, ok := il.buckets.Get(ip)
	if !ok {
		lim = rate.NewLimiter(il.limit, il.burst)
		il.buckets.Add(ip, lim)
	}
	il.mu.Unlock()

	return lim.Allow()
}

// RateLimit rejects clients that exceed the per-IP request rate.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !m.limiter.allow(ip) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s %s %s", ip, c.Request.Method, c.Request.URL.Path)
			response.Error(c, pkgErrors.ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
