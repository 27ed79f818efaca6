// README: Per-IP rate limiting with golang.org/x/time/rate.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long an IP's limiter survives without requests.
// It must exceed the one-minute refill time of a full burst.
const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore holds one limiter per client IP.
type rateLimiterStore struct {
	mu         sync.Mutex
	limiters   map[string]*limiterEntry
	every      rate.Limit
	burst      int
	lastPruned time.Time
	now        func() time.Time
}

func newRateLimiterStore(perMinute int) *rateLimiterStore {
	return &rateLimiterStore{
		limiters: make(map[string]*limiterEntry),
		every:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
		now:      time.Now,
	}
}

func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastPruned) >= limiterIdleTTL {
		s.prune(now)
	}

	e, ok := s.limiters[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(s.every, s.burst)}
		s.limiters[ip] = e
	}
	e.lastSeen = now
	return e.limiter
}

// prune drops limiters idle for limiterIdleTTL. Callers hold mu.
func (s *rateLimiterStore) prune(now time.Time) {
	for ip, e := range s.limiters {
		if now.Sub(e.lastSeen) >= limiterIdleTTL {
			delete(s.limiters, ip)
		}
	}
	s.lastPruned = now
}

// RateLimit allows perMinute requests per IP, with the full minute available as burst.
// A non-positive perMinute disables limiting.
func RateLimit(perMinute int, logger *zap.Logger) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	store := newRateLimiterStore(perMinute)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.getLimiter(ip).Allow() {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
