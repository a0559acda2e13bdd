package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"

	"github.com/exitthree/formgate/config"
)

// NewRouteLimiter returns a Redis-backed sliding-window limiter enforcing
// the given per-route quota, keyed per client IP. The name keeps the two
// route quotas from sharing counter keys in the common storage.
func NewRouteLimiter(rdb *redis.Client, name string, quota config.RouteQuota) fiber.Handler {
	storage := fiberredis.NewFromConnection(rdb)
	return limiter.New(limiter.Config{
		Storage: storage,

		// sliding window
		Max:               quota.MaxRequests,
		Expiration:        time.Duration(quota.WindowSeconds) * time.Second,
		LimiterMiddleware: limiter.SlidingWindow{},

		KeyGenerator: func(c fiber.Ctx) string {
			return name + ":" + c.IP()
		},
	})
}
