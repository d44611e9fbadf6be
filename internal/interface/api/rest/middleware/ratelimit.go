package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter limits requests per client IP. Redis backs it when a client is
// given; otherwise, and whenever Redis errors, an in-process limiter is used.
type RateLimiter struct {
	limiter  *redis_rate.Limiter
	fallback *localLimiter
	limit    redis_rate.Limit
	logger   *zap.Logger
}

func NewRateLimiter(rdb *redis.Client, limit redis_rate.Limit, logger *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		fallback: newLocalLimiter(),
		limit:    limit,
		logger:   logger,
	}
	if rdb != nil {
		rl.limiter = redis_rate.NewLimiter(rdb)
	}
	return rl
}

func Limit(requests, burst int, window time.Duration) redis_rate.Limit {
	return redis_rate.Limit{Rate: requests, Burst: burst, Period: window}
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:ip:" + c.ClientIP() + ":" + c.FullPath()

		res := rl.allow(c.Request.Context(), key)
		setRateLimitHeaders(c, res, rl.limit)

		if res.Allowed == 0 {
			retryAfter := int(res.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": fmt.Sprintf("rate limit exceeded, retry after %d seconds", retryAfter),
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(ctx context.Context, key string) *redis_rate.Result {
	if rl.limiter != nil {
		res, err := rl.limiter.Allow(ctx, key, rl.limit)
		if err == nil {
			return res
		}
		rl.logger.Warn("redis rate limiter failed, using local limiter", zap.Error(err))
	}
	return rl.fallback.allow(key, rl.limit)
}

func setRateLimitHeaders(c *gin.Context, res *redis_rate.Result, limit redis_rate.Limit) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(limit.Rate))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(res.ResetAfter).Unix(), 10))
}

// localLimiter keeps one token bucket per key. A bucket idle long enough to
// have refilled completely carries no state and is dropped on the next sweep.
type localLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*localEntry
	lastSweep time.Time
	now       func() time.Time
}

type localEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func newLocalLimiter() *localLimiter {
	return &localLimiter{limiters: make(map[string]*localEntry), now: time.Now}
}

func (l *localLimiter) allow(key string, limit redis_rate.Limit) *redis_rate.Result {
	perSec := float64(limit.Rate) / limit.Period.Seconds()
	burst := limit.Burst
	if burst < 1 {
		burst = 1
	}
	idle := max(time.Duration(float64(burst)/perSec*float64(time.Second)), limit.Period)

	l.mu.Lock()
	now := l.now()
	if now.Sub(l.lastSweep) >= idle {
		l.sweep(now, idle)
	}
	e, ok := l.limiters[key]
	if !ok {
		e = &localEntry{lim: rate.NewLimiter(rate.Limit(perSec), burst)}
		l.limiters[key] = e
	}
	e.lastSeen = now
	allowed := e.lim.AllowN(now, 1)
	remaining := max(int(e.lim.TokensAt(now)), 0)
	l.mu.Unlock()

	interval := time.Duration(float64(time.Second) / perSec)
	res := &redis_rate.Result{
		Limit:      limit,
		Remaining:  remaining,
		RetryAfter: -1,
		ResetAfter: interval,
	}
	if allowed {
		res.Allowed = 1
	} else {
		res.RetryAfter = interval
	}
	return res
}

func (l *localLimiter) sweep(now time.Time, idle time.Duration) {
	for key, e := range l.limiters {
		if now.Sub(e.lastSeen) >= idle {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}
