package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/danirodriguezz/hirepilot/api/http/presenter"
	"github.com/danirodriguezz/hirepilot/pkg/health"
)

const readyTimeout = 2 * time.Second

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

// Health: liveness only, no dependencies touched.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, fiber.StatusOK, fiber.Map{"status": "ok"})
}

// Ready runs every dependency check and reports each one.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} health.Report
// @Failure 503 {object} health.Report
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
	defer cancel()
	rep := h.svc.Ready(ctx)
	if !rep.Ready {
		return presenter.JSON(c, fiber.StatusServiceUnavailable, rep)
	}
	return presenter.JSON(c, fiber.StatusOK, rep)
}
