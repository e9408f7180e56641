package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/danirodriguezz/hirepilot/api/http/handlers"
	"github.com/danirodriguezz/hirepilot/api/http/presenter"
)

// RateLimit bounds generation requests per candidate. Max 0 disables it.
type RateLimit struct {
	Max    int
	Window time.Duration
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, cv *handlers.TailorHandler, authMW fiber.Handler, rl RateLimit) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	g := v1.Group("/cv", authMW)
	g.Get("/", cv.List)
	g.Post("/generate", generationLimiter(rl), cv.Generate)
	g.Get("/:id", cv.Get)
}

func generationLimiter(rl RateLimit) fiber.Handler {
	if rl.Max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:               rl.Max,
		Expiration:        rl.Window,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			if id, ok := c.Locals("userId").(string); ok && id != "" {
				return id
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return presenter.Error(c, fiber.StatusTooManyRequests, "too many generation requests, try again later")
		},
	})
}
