package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wayfinder/api/routes"
	"wayfinder/internal/analytics"
	"wayfinder/internal/shared/config"
	"wayfinder/internal/speech"
	"wayfinder/internal/venue"
	"wayfinder/pkg/cache"
	"wayfinder/pkg/logger"
	"wayfinder/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	// Load config
	cfg := config.Load()

	// Set Gin mode (debug/release)
	gin.SetMode(cfg.GinMode)

	// Load the venue fixture. A broken or missing fixture never stops the
	// server; the built-in sample venue answers instead.
	venueData := venue.LoadOrFallback(context.Background(), cfg.Venue.DataFile, appLogger)
	venueService := venue.NewService(venueData)

	// Initialize Redis (rate limiting + TTS audio cache). Optional: the
	// server runs uncached and unlimited without it.
	if cfg.Redis.Enabled {
		if err := cache.Init(cache.Config{
			Address:  cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}); err != nil {
			appLogger.Error("Failed to connect to Redis, continuing without it", slog.Any("error", err))
		} else {
			defer cache.Close()
			appLogger.Info("Redis connected", slog.String("address", cfg.Redis.Addr))
		}
	}

	// Initialize Rate Limiter
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && cache.IsInitialized() {
		rateLimiterConfig := &ratelimit.Config{
			Enabled:         cfg.RateLimit.Enabled,
			WindowDuration:  cfg.RateLimit.WindowDuration,
			DefaultRequests: cfg.RateLimit.DefaultRequests,
			PublicRequests:  cfg.RateLimit.PublicRequests,
			QueryRequests:   cfg.RateLimit.QueryRequests,
			SpeechRequests:  cfg.RateLimit.SpeechRequests,
			SessionRequests: cfg.RateLimit.SessionRequests,
			HealthRequests:  cfg.RateLimit.HealthRequests,
			WhitelistedIPs:  cfg.RateLimit.WhitelistedIPs,
		}

		rateLimiter = ratelimit.NewRateLimiter(cache.Client(), rateLimiterConfig)
		appLogger.Info("Rate limiter initialized",
			slog.Bool("enabled", cfg.RateLimit.Enabled),
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	// Analytics query-event stream. Without brokers every event is dropped.
	var publisher analytics.Publisher
	if cfg.Kafka.Enabled {
		kafkaPublisher, err := analytics.NewKafkaPublisher(&analytics.KafkaPublisherConfig{
			Brokers:    cfg.Kafka.Brokers,
			QueryTopic: cfg.Kafka.QueryTopic,
			RetryMax:   3,
			TimeoutMs:  10000,
		})
		if err != nil {
			appLogger.Error("Failed to initialize Kafka publisher, dropping query events", slog.Any("error", err))
			publisher = analytics.NewNopPublisher()
		} else {
			publisher = kafkaPublisher
			appLogger.Info("Kafka query event publisher started",
				slog.String("topic", cfg.Kafka.QueryTopic))
		}
	} else {
		publisher = analytics.NewNopPublisher()
	}
	defer publisher.Close()

	// Server-side voice output through the local synthesizer.
	relay := speech.NewRelay(speech.NewEspeakSynthesizer(cfg.Speech.LocalCommand), appLogger)
	defer relay.Stop()

	// Setup router with rate limiter
	router := setupRouter(cfg, venueService, relay, publisher, rateLimiter)

	// HTTP server
	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("api_status", fmt.Sprintf("http://localhost:%s%s/status", cfg.Port, cfg.GetAPIBasePath())),
			slog.String("version", cfg.APIVersion),
			slog.String("venue", venueData.Name),
			slog.Bool("redis_cache", cache.IsInitialized()),
			slog.Bool("rate_limiting", rateLimiter != nil),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func setupRouter(cfg *config.Config, venues venue.Service, relay *speech.Relay,
	publisher analytics.Publisher, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	// Built-in middleware: logs requests + recovers from panics
	engine.Use(RequestLoggerMiddleware(appLogger), gin.Recovery())

	// CORS configuration
	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true // allow every origin dynamically
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "X-RateLimit-*"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Global rate limiting middleware (applied to all routes)
	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
		appLogger.Info("Rate limiting middleware applied to all routes")
	}

	// Initialize and setup routes
	appRouter := routes.NewRouter(cfg, venues, relay, publisher)
	appRouter.SetupRoutes(engine)

	return engine
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		l.LogHTTPRequest(c, duration)
	}
}
