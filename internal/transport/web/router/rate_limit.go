package router

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/jbeshir/community-feed/internal/metrics"
)

const rateLimiterIdleTTL = time.Hour

// UserRateLimiter limits requests per authenticated user.
type UserRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*rateLimiterEntry
	limit     rate.Limit
	burst     int
	lastPrune time.Time
	now       func() time.Time
}

type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewUserRateLimiter allows perMinute requests per user per minute, with a
// burst of the same size.
func NewUserRateLimiter(perMinute int) *UserRateLimiter {
	return &UserRateLimiter{
		limiters: make(map[string]*rateLimiterEntry),
		limit:    rate.Limit(float64(perMinute) / 60),
		burst:    perMinute,
		now:      time.Now,
	}
}

func (rl *UserRateLimiter) Allow(userID string) bool {
	rl.mu.Lock()
	now := rl.now()
	if now.Sub(rl.lastPrune) > rateLimiterIdleTTL {
		rl.prune(now)
	}

	entry, exists := rl.limiters[userID]
	if !exists {
		entry = &rateLimiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[userID] = entry
	}
	entry.lastAccess = now
	limiter := entry.limiter
	rl.mu.Unlock()

	return limiter.AllowN(now, 1)
}

// retryAfterSeconds is the time for one token to refill, rounded up.
func (rl *UserRateLimiter) retryAfterSeconds() int {
	if rl.burst <= 0 {
		return 60
	}
	return (60 + rl.burst - 1) / rl.burst
}

func (rl *UserRateLimiter) prune(now time.Time) {
	threshold := now.Add(-rateLimiterIdleTTL)
	for userID, entry := range rl.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(rl.limiters, userID)
		}
	}
	rl.lastPrune = now
}

// Middleware rejects requests over the caller's limit with 429. Requests
// without a user pass through; auth is enforced separately.
func (rl *UserRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := domain.UserIDFromContext(r.Context())
		if userID != "" && !rl.Allow(userID) {
			metrics.RateLimited.Inc()
			w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
