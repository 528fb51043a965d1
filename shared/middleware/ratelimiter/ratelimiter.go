package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// keyLimiter is the token bucket of a single identity.
type keyLimiter struct {
	limiter *rate.Limiter
	timer   *time.Timer
}

// UserRateLimiter keeps one token bucket per identity (user, IP, ...).
// A bucket is forgotten after expirationTime without requests.
type UserRateLimiter struct {
	limiters       map[string]*keyLimiter
	mu             sync.Mutex
	limit          rate.Limit
	burst          int
	expirationTime time.Duration
}

// New creates a limiter refilling perSecond tokens per second up to burst.
func New(perSecond float64, burst int, expirationTime time.Duration) *UserRateLimiter {
	return &UserRateLimiter{
		limiters:       make(map[string]*keyLimiter),
		limit:          rate.Limit(perSecond),
		burst:          burst,
		expirationTime: expirationTime,
	}
}

// getLimiter gets or creates the limiter for key and pushes back its expiry.
func (u *UserRateLimiter) getLimiter(key string) *rate.Limiter {
	u.mu.Lock()
	defer u.mu.Unlock()

	kl, exists := u.limiters[key]
	if !exists {
		kl = &keyLimiter{limiter: rate.NewLimiter(u.limit, u.burst)}
		u.limiters[key] = kl
	}
	if kl.timer != nil {
		kl.timer.Stop()
	}
	kl.timer = time.AfterFunc(u.expirationTime, func() { u.cleanup(key, kl) })

	return kl.limiter
}

// cleanup removes the limiter unless it was replaced in the meantime
func (u *UserRateLimiter) cleanup(key string, kl *keyLimiter) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.limiters[key] == kl {
		delete(u.limiters, key)
	}
}

// Allow checks if a request should be allowed for a given identity
func (u *UserRateLimiter) Allow(key string) bool {
	return u.getLimiter(key).Allow()
}

// Stop cleans up all timers
func (u *UserRateLimiter) Stop() {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, kl := range u.limiters {
		if kl.timer != nil {
			kl.timer.Stop()
		}
	}
}
