package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jobhubapp/jobhub/marketplace/application/applicationapi"
	"github.com/jobhubapp/jobhub/marketplace/auth"
	"github.com/jobhubapp/jobhub/marketplace/offer/offerapi"
	"github.com/jobhubapp/jobhub/marketplace/posting/postingapi"
	"github.com/jobhubapp/jobhub/marketplace/user/userapi"
	"github.com/jobhubapp/jobhub/pkg/config"
	"github.com/jobhubapp/jobhub/pkg/errx"
	"github.com/jobhubapp/jobhub/pkg/logx"
)

func main() {
	// 1. Initialize Logger
	logx.SetLevel(logx.LevelInfo)
	logx.Info("Starting JobHub API Server...")

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logx.Fatalf("Failed to load configuration: %v", err)
	}

	// 3. Initialize Dependency Container
	container := NewContainer(cfg)
	defer container.DB.Close()
	defer container.Redis.Close()

	// 4. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "JobHub Marketplace API",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler,
	})

	// 5. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Configure for production
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 6. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     container.DB.Ping() == nil,
			"redis":  container.Redis.Ping(c.Context()).Err() == nil,
		})
	})

	// 7. Register Routes

	// Auth: /auth/signup, /auth/login, /auth/me
	auth.RegisterRoutes(app, container.AuthHandlers, container.TokenService)

	// Profiles and seeker browsing: /api/profile, /api/seekers
	userapi.RegisterRoutes(app, container.UserHandlers, container.TokenService)

	// Postings: /api/postings (employer), /api/jobs (seeker feed)
	postingapi.RegisterRoutes(app, container.PostingHandlers, container.TokenService)

	// Applications: /api/applications, /api/postings/:id/applications
	applicationapi.RegisterRoutes(app, container.ApplicationHandlers, container.TokenService)

	// Offers: /api/offers
	offerapi.RegisterRoutes(app, container.OfferHandlers, container.TokenService)

	// 8. Start Offer Expiry Worker
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	container.OfferExpiryWorker.Start(workerCtx)

	// 9. Start Server with Graceful Shutdown
	go func() {
		logx.Infof("Server listening on port %s", cfg.Server.Port)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Wait for signal
	logx.Info("Shutting down server...")

	stopWorkers()
	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(c *fiber.Ctx, err error) error {
	// If it's a Fiber error (e.g., 404 handler not found)
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
			"code":  e.Code,
		})
	}

	// If it's our custom errx.Error
	if e, ok := err.(*errx.Error); ok {
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	// Default unknown error
	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
