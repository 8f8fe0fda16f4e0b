package middleware

import (
	"calendar-schedule/config"
	"calendar-schedule/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter // nil when rate limiting is disabled
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled && cfg.PerMinute > 0 {
		mw.limiter = newRateLimiter(cfg.PerMinute)
	}
	return mw
}
