package middleware

import (
	"date-mathematics/pkg/log"
)

// Config tunes the middleware set.
type Config struct {
	RateLimitEnabled bool
	RequestsPerMin   int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitEnabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
