package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Quota is one user's usage of a RateLimiter window after counting a request.
type Quota struct {
	Limit   int
	Used    int
	ResetAt time.Time
}

// Exceeded reports whether the counted request went over the limit.
func (q Quota) Exceeded() bool { return q.Used > q.Limit }

func (q Quota) Remaining() int { return max(q.Limit-q.Used, 0) }

// RateLimiter counts requests per user in fixed Redis-backed windows.
type RateLimiter struct {
	redis  *redis.Client
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewRateLimiter(redisClient *redis.Client, prefix string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redis:  redisClient,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// NewCoachRateLimiter allows limit coach messages per user per hour.
func NewCoachRateLimiter(redisClient *redis.Client, limit int) *RateLimiter {
	return NewRateLimiter(redisClient, "zenith:coach_quota", limit, time.Hour)
}

// Handler rejects requests over the quota with 429. When Redis cannot be
// reached the request goes through.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "user not authenticated"})
			return
		}

		q, err := rl.Count(c.Request.Context(), userID)
		if err != nil {
			log.Printf("[RateLimiter] Quota check failed for %s, allowing request: %v", userID, err)
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(q.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(q.Remaining()))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(q.ResetAt.Unix(), 10))
		if q.Exceeded() {
			wait := max(int(q.ResetAt.Sub(rl.now()).Seconds()), 1)
			c.Header("Retry-After", strconv.Itoa(wait))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Error: fmt.Sprintf("rate limit of %d requests per %v exceeded", q.Limit, rl.window),
			})
			return
		}
		c.Next()
	}
}

// Count records one request for userID in the current window.
func (rl *RateLimiter) Count(ctx context.Context, userID string) (Quota, error) {
	start := rl.now().Truncate(rl.window)
	key := rl.key(userID, start)

	var incr *redis.IntCmd
	_, err := rl.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, rl.window)
		return nil
	})
	if err != nil {
		return Quota{}, fmt.Errorf("failed to count request: %w", err)
	}
	return Quota{Limit: rl.limit, Used: int(incr.Val()), ResetAt: start.Add(rl.window)}, nil
}

func (rl *RateLimiter) key(userID string, start time.Time) string {
	return fmt.Sprintf("%s:%s:%d", rl.prefix, userID, start.Unix())
}
