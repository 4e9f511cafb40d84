// Package server assembles the Fiber application: repositories, services, handlers
// and the operational endpoints.
package server

import (
	"context"
	"time"

	"solidarmap/internal/database"
	"solidarmap/internal/handlers"
	applog "solidarmap/internal/logger"
	"solidarmap/internal/middleware"
	"solidarmap/internal/monitoring"
	"solidarmap/internal/repositories"
	"solidarmap/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

// Dependencies are the collaborators the application is built from. Events may be nil.
type Dependencies struct {
	DB            *gorm.DB
	Log           *logrus.Logger
	Events        services.EventPublisher
	Metrics       *monitoring.Metrics
	HashPasswords bool
}

// NewApp wires every resource under /api and returns the ready Fiber app.
func NewApp(deps Dependencies) *fiber.App {
	if deps.Log == nil {
		deps.Log = applog.Discard()
	}
	if deps.Metrics == nil {
		deps.Metrics = monitoring.New()
	}

	app := fiber.New(fiber.Config{
		AppName:      "solidarmap",
		ErrorHandler: handlers.ErrorHandler(deps.Log),
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.AccessLog(deps.Log))
	app.Use(middleware.Metrics(deps.Metrics))

	// --- Repositories ---
	userTypeRepo := repositories.NewGORMUserTypeRepository(deps.DB)
	resourceTypeRepo := repositories.NewGORMResourceTypeRepository(deps.DB)
	zoneTypeRepo := repositories.NewGORMZoneTypeRepository(deps.DB)
	userRepo := repositories.NewGORMUserRepository(deps.DB)
	aidRequestRepo := repositories.NewGORMAidRequestRepository(deps.DB)
	ratingRepo := repositories.NewGORMRatingRepository(deps.DB)
	locationRepo := repositories.NewGORMLocationRepository(deps.DB)
	messageRepo := repositories.NewGORMMessageRepository(deps.DB)

	// --- Services ---
	svcDeps := services.Deps{Log: deps.Log, Events: deps.Events, Metrics: deps.Metrics}
	userTypeService := services.NewUserTypeService(userTypeRepo, svcDeps)
	resourceTypeService := services.NewResourceTypeService(resourceTypeRepo, svcDeps)
	zoneTypeService := services.NewZoneTypeService(zoneTypeRepo, svcDeps)
	userService := services.NewUserService(userRepo, userTypeRepo, deps.HashPasswords, svcDeps)
	aidRequestService := services.NewAidRequestService(aidRequestRepo, userRepo, resourceTypeRepo, svcDeps)
	ratingService := services.NewRatingService(ratingRepo, userRepo, aidRequestRepo, svcDeps)
	locationService := services.NewLocationService(locationRepo, aidRequestRepo, zoneTypeRepo, svcDeps)
	messageService := services.NewMessageService(messageRepo, aidRequestRepo, userRepo, svcDeps)

	// --- API Routes ---
	api := app.Group("/api")
	handlers.NewUserTypeHandler(userTypeService, deps.Log).RegisterRoutes(api)
	handlers.NewResourceTypeHandler(resourceTypeService, deps.Log).RegisterRoutes(api)
	handlers.NewZoneTypeHandler(zoneTypeService, deps.Log).RegisterRoutes(api)
	handlers.NewUserHandler(userService, deps.Log).RegisterRoutes(api)
	handlers.NewAidRequestHandler(aidRequestService, deps.Log).RegisterRoutes(api)
	handlers.NewRatingHandler(ratingService, deps.Log).RegisterRoutes(api)
	handlers.NewLocationHandler(locationService, deps.Log).RegisterRoutes(api)
	handlers.NewMessageHandler(messageService, deps.Log).RegisterRoutes(api)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		dbStatus := "up"
		if err := database.Ping(ctx, deps.DB); err != nil {
			deps.Log.WithError(err).Warn("health check: database unreachable")
			dbStatus = "down"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": dbStatus,
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{})))

	return app
}
