package handler

import (
	"page-assist/internal/domain"
	"page-assist/internal/dto"
	"page-assist/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type HealthHandler struct {
	store domain.Cache
}

func NewHealthHandler(store domain.Cache) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health reports 503 when the bookmark store cannot be reached.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if err := h.store.Ping(c.UserContext()); err != nil {
		logger.Get().Warn("Health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "degraded", Store: "unreachable"})
	}
	return c.JSON(dto.HealthResponse{Status: "ok", Store: "ok"})
}
