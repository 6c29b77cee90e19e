package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"questboard/backend/config"
	"questboard/backend/middleware"
	"questboard/backend/routes"
	"questboard/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	format := cfg.LogFormat
	if cfg.IsProduction() {
		format = "json"
	}
	logger := utils.InitLogger(utils.LoggerConfig{
		Format:       format,
		Level:        cfg.LogLevel,
		EnableColors: !cfg.IsProduction(),
	})

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		logger.Fatalf("Error initializing database: %v", err)
	}
	if err := utils.MigrateDB(db); err != nil {
		logger.Fatalf("Error migrating database: %v", err)
	}

	redisClient, err := utils.InitRedis(context.Background(), cfg)
	if err != nil {
		logger.Fatalf("Error connecting to redis: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "questboard",
		ErrorHandler: middleware.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg, redisClient)

	go func() {
		if err := app.Listen(":" + cfg.ServerPort); err != nil {
			logger.Fatalf("Server stopped: %v", err)
		}
	}()
	logger.WithField("port", cfg.ServerPort).Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.WithError(err).Error("Server shutdown failed")
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.WithError(err).Warn("Error closing redis client")
		}
	}
	if err := utils.CloseDB(db); err != nil {
		logger.WithError(err).Warn("Error closing database")
	}
	logger.Info("Server exited")
}
