package api

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"

	swagger "github.com/go-swagno/swagno-fiber/swagger"

	"github.com/OussemaHleli/face-recognition-employee-system/internal/api/docs"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/api/handler"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/api/middleware"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/database"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/fetch"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/match"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/provider"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/repository"
	"github.com/OussemaHleli/face-recognition-employee-system/internal/service"
)

type Dependencies struct {
	EmployeeRepo     *repository.EmployeeRepository
	EncodingRepo     *repository.EncodingRepository
	VerificationRepo *repository.VerificationRepository
	Encoder          provider.Encoder
	Fetcher          *fetch.Fetcher
	Engine           *match.Engine
	DB               *pgxpool.Pool
}

type Router struct {
	app    *fiber.App
	logger *slog.Logger
	deps   *Dependencies
}

func NewRouter(logger *slog.Logger, deps *Dependencies) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "Face Recognition Employee System",
	})

	return &Router{
		app:    app,
		logger: logger,
		deps:   deps,
	}
}

func (r *Router) Setup() {
	// Global middlewares
	r.app.Use(requestid.New())
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Swagger documentation
	sw := docs.NewSwagger()
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	if r.deps == nil {
		return
	}

	enrollmentService := service.NewEnrollmentService(
		r.deps.EmployeeRepo,
		r.deps.EncodingRepo,
		r.deps.Encoder,
		r.deps.Fetcher,
		r.logger,
	)
	verificationService := service.NewVerificationService(
		r.deps.EmployeeRepo,
		r.deps.EncodingRepo,
		r.deps.VerificationRepo,
		r.deps.Encoder,
		r.deps.Engine,
		r.logger,
	)
	directoryService := service.NewDirectoryService(r.deps.EmployeeRepo, r.deps.EncodingRepo)

	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService, r.logger)
	verifyHandler := handler.NewVerifyHandler(verificationService, r.logger)
	employeeHandler := handler.NewEmployeeHandler(directoryService, r.logger)
	adminHandler := handler.NewAdminHandler(directoryService, r.logger)
	dbPing := handler.PingerFunc(func(ctx context.Context) error {
		return database.HealthCheck(ctx, r.deps.DB)
	})
	healthHandler := handler.NewHealthHandler(dbPing, directoryService, r.deps.Engine.Threshold())

	r.app.Get("/health", healthHandler.Health)
	r.app.Get("/ready", healthHandler.Ready)

	r.app.Post("/register", enrollmentHandler.Register)
	r.app.Post("/verify", verifyHandler.Verify)

	r.app.Get("/employees", employeeHandler.List)
	// declared before :id so "process" is not captured as an id
	r.app.Post("/employees/process", enrollmentHandler.BulkProcess)
	r.app.Post("/employees/:id/process", enrollmentHandler.Process)
	r.app.Post("/employees/:id/reenroll", enrollmentHandler.Reenroll)

	r.app.Get("/admin/stats", adminHandler.Stats)
}

func (r *Router) App() *fiber.App {
	return r.app
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

func (r *Router) Shutdown() error {
	return r.app.Shutdown()
}
