package middleware

import (
	"taskflow/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l       log.Logger
	limiter *ipLimiter
}

// Config holds middleware tunables.
type Config struct {
	// RateLimit is sustained requests per second allowed per client IP.
	RateLimit float64
	// RateBurst is the short-term burst allowance per client IP.
	RateBurst int
	// RateClients caps how many client buckets are tracked at once.
	RateClients int
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newIPLimiter(cfg),
	}
}
