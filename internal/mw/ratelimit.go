package mw

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter keeps one token bucket per client key.
type ClientLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	r         rate.Limit
	b         int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewClientLimiter allows r requests per second with burst b per client.
// Buckets unused for idle are dropped on the next sweep.
func NewClientLimiter(r rate.Limit, b int, idle time.Duration) *ClientLimiter {
	return &ClientLimiter{
		visitors: make(map[string]*visitor),
		r:        r,
		b:        b,
		idle:     idle,
		now:      time.Now,
	}
}

// Allow reports whether key may make a request now.
func (l *ClientLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if l.idle > 0 && now.Sub(l.lastSweep) > l.idle {
		l.sweepLocked(now)
	}
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.r, l.b)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Sweep drops buckets idle for longer than the configured window.
func (l *ClientLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sweepLocked(l.now())
}

func (l *ClientLimiter) sweepLocked(now time.Time) int {
	l.lastSweep = now
	cutoff := now.Add(-l.idle)
	dropped := 0
	for key, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, key)
			dropped++
		}
	}
	return dropped
}

// RateLimit rejects clients that exceed their bucket with 429. The client is
// identified by ipHeader when set and present, otherwise by gin's ClientIP.
func RateLimit(l *ClientLimiter, ipHeader string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if ipHeader != "" {
			if v := c.GetHeader(ipHeader); v != "" {
				key = v
			}
		}
		if !l.Allow(key) {
			rateLimitedTotal.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
