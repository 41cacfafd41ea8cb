// Package main is the entry point for the ledger service.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"ledger/internal/config"
	"ledger/internal/handlers"
	"ledger/internal/repositories"
	"ledger/internal/services/transaction"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	repo, closeRepo := buildRepository()
	defer closeRepo()

	reportCache, closeCache := buildCache()
	defer closeCache()

	svc := transaction.New(repo, reportCache, nil)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ALLOW_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST",
	}))

	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api", limiter.New(limiter.Config{
		Max:        config.GetIntEnv("RATE_LIMIT_MAX", 100),
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	handlers.SetupRoutes(app, svc)

	// Shut the server down on SIGINT/SIGTERM so the deferred store and
	// cache closes run.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("Failed to shut down server: %v", err)
		}
	}()

	if err := app.Listen(":" + config.GetEnv("PORT", "3000")); err != nil {
		log.Printf("server stopped: %v", err)
	}
}

// buildRepository selects the backing store. STORAGE=memory keeps
// everything in process, anything else connects to Postgres.
func buildRepository() (repositories.Repository, func()) {
	if config.GetEnv("STORAGE", "postgres") == "memory" {
		log.Println("using in-memory repository")
		return repositories.NewInMemoryRepository(), func() {}
	}

	db, err := repositories.OpenDB(repositories.NewPostgresConfig())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	log.Println("PostgreSQL connected & migrations applied")

	closeDB := func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Printf("Failed to get database instance: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}
	return repositories.NewPostgresRepository(db), closeDB
}

// buildCache wires the Redis report cache when CACHE_ENABLED is set. The
// cache is flushed on startup so stale reports never survive a deploy.
func buildCache() (repositories.Cache, func()) {
	if !config.GetBoolEnv("CACHE_ENABLED", false) {
		return nil, func() {}
	}

	cfg := repositories.NewRedisConfig()
	client, err := repositories.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Redis connection verified")

	reportCache := repositories.NewRedisReportCache(client, cfg.ReportTTL)
	if err := reportCache.Flush(context.Background()); err != nil {
		log.Printf("Failed to flush Redis cache: %v", err)
	} else {
		log.Println("Redis cache flushed on startup")
	}

	closeRedis := func() {
		if err := reportCache.Close(); err != nil {
			log.Printf("Failed to close Redis connection: %v", err)
		}
	}
	return reportCache, closeRedis
}
