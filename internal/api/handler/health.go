package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Pinger checks store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a plain function to the Pinger interface.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	db        Pinger
	stats     StatsProvider
	threshold float64
}

func NewHealthHandler(db Pinger, stats StatsProvider, threshold float64) *HealthHandler {
	return &HealthHandler{
		db:        db,
		stats:     stats,
		threshold: threshold,
	}
}

type HealthResponse struct {
	Status    string  `json:"status"`
	Database  string  `json:"database"`
	Employees int     `json:"employees"`
	Encodings int     `json:"encodings"`
	Threshold float64 `json:"threshold"`
	Version   string  `json:"version,omitempty"`
}

// Health GET /health - store connectivity plus collection counts. Counts
// are informational; only the ping decides the status.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := HealthResponse{
		Status:    "ok",
		Database:  "up",
		Threshold: h.threshold,
		Version:   "0.1.0",
	}

	if err := h.db.Ping(c.Context()); err != nil {
		resp.Status = "degraded"
		resp.Database = "down"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}

	if stats, err := h.stats.Stats(c.Context()); err == nil {
		resp.Employees = stats.TotalEmployees
		resp.Encodings = stats.TotalEncodings
	}

	return c.JSON(resp)
}

// Ready GET /ready - liveness for orchestration probes
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ready"})
}
