package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/cradlehq/cradle/internal/api"
	"github.com/cradlehq/cradle/internal/db"
	"github.com/cradlehq/cradle/internal/ratelimit"
	"github.com/cradlehq/cradle/internal/security"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zapLogger.Sync()

	secretKey := getEnv("SECRET_KEY", "")
	if secretKey == "" {
		generated, err := security.GenerateSigningSecret(48)
		if err != nil {
			zapLogger.Fatal("secret key generation failed", zap.Error(err))
		}
		secretKey = generated
		zapLogger.Warn("SECRET_KEY not set; using a generated key, tokens will not survive a restart")
	}

	dbPath := getEnv("DB_PATH", filepath.Join("data", "cradle.db"))
	port := getEnv("PORT", "8080")
	uploadDir := getEnv("UPLOAD_DIR", filepath.Join("uploads", "baby_photos"))

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		zapLogger.Fatal("database init failed", zap.Error(err))
	}

	handler := api.NewHandler(database, []byte(secretKey), uploadDir, zapLogger)

	app := fiber.New(fiber.Config{
		AppName:               "Cradle",
		DisableStartupMessage: true,
		BodyLimit:             10 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	if rateLimitEnabled() {
		config := limiter.Config{
			Max:        120,
			Expiration: time.Minute,
		}
		if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
			storage, err := ratelimit.NewRedisStorage(redisURL, "cradle:ratelimit:")
			if err != nil {
				zapLogger.Fatal("redis init failed", zap.Error(err))
			}
			defer storage.Close()
			config.Storage = storage
			zapLogger.Info("rate limiting backed by redis")
		}
		app.Use(limiter.New(config))
	}

	app.Static("/uploads/baby_photos", uploadDir)
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			zapLogger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	zapLogger.Info("cradle listening",
		zap.String("port", port),
		zap.String("db", dbPath),
		zap.String("tz", location.String()),
	)
	if err := app.Listen(":" + port); err != nil {
		zapLogger.Fatal("server exited", zap.Error(err))
	}
}

func rateLimitEnabled() bool {
	value := strings.ToLower(getEnv("RATE_LIMIT_ENABLED", "true"))
	return value != "false" && value != "0" && value != "off"
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
