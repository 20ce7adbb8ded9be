package middleware

import (
	"time"

	"golang.org/x/time/rate"

	"smart-day-planner/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l           log.Logger
	planLimiter *rate.Limiter
}

// New creates the middleware set. ratePerMin caps /api/plan throughput for the
// whole process; zero or negative disables limiting.
func New(l log.Logger, ratePerMin int) Middleware {
	var limiter *rate.Limiter
	if ratePerMin > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(ratePerMin)), ratePerMin)
	}

	return Middleware{
		l:           l,
		planLimiter: limiter,
	}
}
