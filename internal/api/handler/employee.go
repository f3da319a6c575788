package handler

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/service"
)

// DirectoryService interface for the service
type DirectoryService interface {
	List(ctx context.Context) ([]service.EmployeeListing, error)
}

// EmployeeHandler serves the employee directory
type EmployeeHandler struct {
	service DirectoryService
	logger  *slog.Logger
}

func NewEmployeeHandler(service DirectoryService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		service: service,
		logger:  logger,
	}
}

// ListResponse response for the employee listing
type ListResponse struct {
	Employees []service.EmployeeListing `json:"employees"`
	Count     int                       `json:"count"`
}

// List GET /employees - all employees with enrollment state
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	listings, err := h.service.List(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(ListResponse{
		Employees: listings,
		Count:     len(listings),
	})
}
