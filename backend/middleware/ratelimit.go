package middleware

import (
	"strconv"
	"time"

	"questboard/backend/apperror"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// RateLimit allows maxRequests per client IP in each fixed window, counted in redis.
func RateLimit(redisClient *redis.Client, maxRequests int, window time.Duration) fiber.Handler {
	if redisClient == nil {
		panic("Redis client cannot be nil for RateLimit middleware")
	}
	if maxRequests <= 0 {
		panic("maxRequests must be positive for RateLimit middleware")
	}
	if window <= 0 {
		panic("window duration must be positive for RateLimit middleware")
	}

	return func(c *fiber.Ctx) error {
		key := "ratelimit:" + c.IP()
		ctx := c.UserContext()

		// fail open on redis errors
		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			logrus.WithError(err).Error("RateLimit: redis INCR failed")
			return c.Next()
		}
		if count == 1 {
			if err := redisClient.Expire(ctx, key, window).Err(); err != nil {
				logrus.WithError(err).WithField("key", key).Error("RateLimit: redis EXPIRE failed")
			}
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		remaining := int64(maxRequests) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(maxRequests) {
			return apperror.New(apperror.RateLimitedError, "Too many requests", nil)
		}
		return c.Next()
	}
}
