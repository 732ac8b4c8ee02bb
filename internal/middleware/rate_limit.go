package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/boltjoint-service/internal/domain/dto"
	"github.com/guttosm/boltjoint-service/internal/i18n"
)

const defaultRateLimitShards = 16

// window tracks the fixed-window counter of one caller.
type window struct {
	remaining int
	resetAt   time.Time
}

type rateLimiterShard struct {
	mu      sync.Mutex
	callers map[string]*window
}

// RateLimiter is a fixed-window limiter sharded by caller to reduce lock contention.
// Callers are identified by principal when authenticated, otherwise by client IP.
type RateLimiter struct {
	shards   []*rateLimiterShard
	rate     int
	window   time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter allows rate requests per caller in each window.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return NewShardedRateLimiter(rate, window, defaultRateLimitShards)
}

// NewShardedRateLimiter is NewRateLimiter with a custom shard count.
func NewShardedRateLimiter(rate int, windowLen time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultRateLimitShards
	}

	rl := &RateLimiter{
		shards: make([]*rateLimiterShard, numShards),
		rate:   rate,
		window: windowLen,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i] = &rateLimiterShard{callers: make(map[string]*window)}
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) shard(id string) *rateLimiterShard {
	return rl.shards[xxhash.Sum64String(id)%uint64(len(rl.shards))]
}

// allow consumes one request for id and reports the remaining budget and
// the time the window resets.
func (rl *RateLimiter) allow(id string) (bool, int, time.Time) {
	s := rl.shard(id)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := rl.now()
	w, ok := s.callers[id]
	if !ok || !now.Before(w.resetAt) {
		w = &window{remaining: rl.rate, resetAt: now.Add(rl.window)}
		s.callers[id] = w
	}
	if w.remaining <= 0 {
		return false, 0, w.resetAt
	}
	w.remaining--
	return true, w.remaining, w.resetAt
}

// RateLimit returns the middleware. Place it after authentication so
// principals are limited individually.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, resetAt := rl.allow(callerID(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			retry := int(time.Until(resetAt).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, i18n.T(c, i18n.ErrKeyRateLimitExceeded)).WithRequestID(GetRequestID(c)))
			return
		}
		c.Next()
	}
}

func callerID(c *gin.Context) string {
	if p := GetPrincipal(c); p != "" {
		return "principal:" + p
	}
	return "ip:" + c.ClientIP()
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupExpired()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) cleanupExpired() {
	now := rl.now()
	for _, s := range rl.shards {
		s.mu.Lock()
		for id, w := range s.callers {
			if !now.Before(w.resetAt) {
				delete(s.callers, id)
			}
		}
		s.mu.Unlock()
	}
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Stats returns the number of tracked callers, in total and per shard.
func (rl *RateLimiter) Stats() (total int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, s := range rl.shards {
		s.mu.Lock()
		perShard[i] = len(s.callers)
		s.mu.Unlock()
		total += perShard[i]
	}
	return total, perShard
}
