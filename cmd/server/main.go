package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/tripplanner/internal/generation"
	"github.com/dharmasatrya/tripplanner/internal/handler"
	"github.com/dharmasatrya/tripplanner/internal/orchestrator"
	"github.com/dharmasatrya/tripplanner/internal/ratelimit"
)

type Config struct {
	Port         string
	GeminiAPIKey string
	GeminiModel  string
	GenTimeout   time.Duration
	GenRPS       float64
	GenBurst     int
}

func main() {
	// Best effort: env vars win over .env, and a missing file is fine.
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := loadConfig()
	if cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	gen, err := generation.NewGeminiGenerator(context.Background(), generation.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Timeout: cfg.GenTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to initialize generation client: %v", err)
	}

	flights := generation.NewFlightGenerator(gen, cfg.GeminiModel)
	hotels := generation.NewHotelGenerator(gen, cfg.GeminiModel)

	rateLimiter := ratelimit.NewBranchLimiterWithDefaults()
	rateLimiter.SetBranchLimit(flights.Name(), cfg.GenRPS, cfg.GenBurst)
	rateLimiter.SetBranchLimit(hotels.Name(), cfg.GenRPS, cfg.GenBurst)

	orch := orchestrator.New(flights, hotels, orchestrator.Config{
		RateLimiter: rateLimiter,
		Logger:      log,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	searchHandler := handler.NewSearchHandler(orch)

	api := e.Group("/api/v1")
	api.POST("/trips/search", searchHandler.Search)
	e.GET("/health", handler.HealthHandler)

	log.WithFields(logrus.Fields{
		"port":  cfg.Port,
		"model": cfg.GeminiModel,
	}).Info("Starting trip planner server")

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", generation.DefaultModel),
		GenTimeout:   getEnvDuration("GEN_TIMEOUT", 60*time.Second),
		GenRPS:       getEnvFloat("GEN_RPS", 2),
		GenBurst:     getEnvInt("GEN_BURST", 4),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
