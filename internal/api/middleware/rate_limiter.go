package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/altechdata/postcode-api/internal/config"
	"github.com/altechdata/postcode-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const rateLimitKeyPrefix = "postcode-api:ratelimit:"

// RateLimiter limits requests per client IP. With a Redis client the limit is
// a fixed one-minute window shared by all instances; otherwise, or whenever
// Redis errors, each instance applies its own token bucket.
type RateLimiter struct {
	config   config.RateLimitConfig
	redis    *redis.Client
	logger   *logrus.Logger
	clients  map[string]*rate.Limiter
	lastSeen map[string]time.Time
	mu       sync.Mutex
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type decision struct {
	allowed    bool
	remaining  int
	retryAfter time.Duration
	reset      time.Time
}

// NewRateLimiter creates a new rate limiter; redisClient may be nil
func NewRateLimiter(cfg config.RateLimitConfig, redisClient *redis.Client, logger *logrus.Logger) *RateLimiter {
	rl := &RateLimiter{
		config:   cfg,
		redis:    redisClient,
		logger:   logger,
		clients:  make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	if cfg.CleanupInterval > 0 {
		go rl.cleanupClients()
	}

	return rl
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		d := rl.allow(c.Request.Context(), c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.RequestsPerMinute))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(d.reset.Unix(), 10))

		if !d.allowed {
			seconds := int(math.Ceil(d.retryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error: fmt.Sprintf("Too many requests. Try again in %ds.", seconds),
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(ctx context.Context, clientID string) decision {
	if rl.redis != nil {
		d, err := rl.allowShared(ctx, clientID)
		if err == nil {
			return d
		}
		rl.logger.WithError(err).Warn("Redis rate limit check failed, using local limiter")
	}
	return rl.allowLocal(clientID)
}

// allowShared counts requests in the current minute window in Redis
func (rl *RateLimiter) allowShared(ctx context.Context, clientID string) (decision, error) {
	now := rl.now()
	window := now.Truncate(time.Minute)
	reset := window.Add(time.Minute)
	key := fmt.Sprintf("%s%s:%d", rateLimitKeyPrefix, clientID, window.Unix())

	pipe := rl.redis.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return decision{}, err
	}

	limit := int64(rl.config.RequestsPerMinute)
	count := incr.Val()
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	return decision{
		allowed:    count <= limit,
		remaining:  int(remaining),
		retryAfter: reset.Sub(now),
		reset:      reset,
	}, nil
}

// allowLocal applies a per-instance token bucket
func (rl *RateLimiter) allowLocal(clientID string) decision {
	limiter := rl.getLimiter(clientID)
	now := rl.now()

	if limiter.AllowN(now, 1) {
		return decision{
			allowed:   true,
			remaining: int(limiter.TokensAt(now)),
			reset:     now.Add(time.Minute),
		}
	}

	r := limiter.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	r.CancelAt(now)

	return decision{
		allowed:    false,
		remaining:  0,
		retryAfter: delay,
		reset:      now.Add(delay),
	}
}

// getLimiter gets or creates a rate limiter for a client
func (rl *RateLimiter) getLimiter(clientID string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.lastSeen[clientID] = rl.now()

	if limiter, exists := rl.clients[clientID]; exists {
		return limiter
	}

	rps := rate.Limit(float64(rl.config.RequestsPerMinute) / 60.0)
	limiter := rate.NewLimiter(rps, rl.config.BurstSize)
	rl.clients[clientID] = limiter

	return limiter
}

// cleanupClients removes idle client limiters
func (rl *RateLimiter) cleanupClients() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.config.CleanupInterval * 2)
	for clientID, lastSeen := range rl.lastSeen {
		if lastSeen.Before(cutoff) {
			delete(rl.clients, clientID)
			delete(rl.lastSeen, clientID)
		}
	}
}

// Stop ends the cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// GetStats returns rate limiter statistics
func (rl *RateLimiter) GetStats() map[string]interface{} {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return map[string]interface{}{
		"active_clients":      len(rl.clients),
		"requests_per_minute": rl.config.RequestsPerMinute,
		"burst_size":          rl.config.BurstSize,
		"shared":              rl.redis != nil,
	}
}
