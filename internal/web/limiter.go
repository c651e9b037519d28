package web

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// ipLimiter keeps one token bucket per client ip.
type ipLimiter struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

func newIPLimiter(perSecond float64, burst int) *ipLimiter {
	return &ipLimiter{
		m: make(map[string]*rate.Limiter),
		r: rate.Limit(perSecond),
		b: burst,
	}
}

func (l *ipLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.m[ip]; ok {
		return lim
	}
	lim := rate.NewLimiter(l.r, l.b)
	l.m[ip] = lim
	return lim
}

func (s *Server) throttle(c *fiber.Ctx) error {
	if s.limiter == nil {
		return c.Next()
	}
	if !s.limiter.limiterFor(c.IP()).Allow() {
		s.log.WithField("ip", c.IP()).WithField("path", c.Path()).Debug("throttled")
		return fiber.NewError(fiber.StatusTooManyRequests, "too many requests, try again later")
	}
	return c.Next()
}
