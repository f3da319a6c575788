package handler

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/domain"
)

// StatsProvider reports enrollment coverage.
type StatsProvider interface {
	Stats(ctx context.Context) (*domain.SystemStats, error)
}

// AdminHandler serves operational stats
type AdminHandler struct {
	stats  StatsProvider
	logger *slog.Logger
}

func NewAdminHandler(stats StatsProvider, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		stats:  stats,
		logger: logger,
	}
}

// Stats GET /admin/stats - enrollment coverage
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.stats.Stats(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(stats)
}
