package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	_ "github.com/SscSPs/payment_voucher_app/cmd/docs"
	"github.com/SscSPs/payment_voucher_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/payment_voucher_app/internal/adapters/sessionstore"
	portsrepo "github.com/SscSPs/payment_voucher_app/internal/core/ports/repositories"
	"github.com/SscSPs/payment_voucher_app/internal/core/services"
	"github.com/SscSPs/payment_voucher_app/internal/handlers"
	"github.com/SscSPs/payment_voucher_app/internal/middleware"
	"github.com/SscSPs/payment_voucher_app/internal/platform/config"
	"github.com/SscSPs/payment_voucher_app/internal/platform/metrics"
	"github.com/SscSPs/payment_voucher_app/pkg/database"
	"github.com/SscSPs/payment_voucher_app/pkg/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// @title Payment Voucher API
// @version 1.0
// @description Bill allocation and settlement backend for payment and receipt vouchers.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.Setup(cfg.LogLevel, cfg.IsProduction)
	m := metrics.New()

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var (
		sessionStore portsrepo.SessionStore
		limiterStore limiter.Store
	)
	if cfg.RedisURL != "" {
		redisStore, err := sessionstore.NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to Redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisStore.Close()
		sessionStore = redisStore

		limiterStore, err = sredis.NewStoreWithOptions(redisStore.Client(), limiter.StoreOptions{
			Prefix: "voucher:ratelimit",
		})
		if err != nil {
			logger.Error("Failed to create rate limit store", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Using Redis for settlement sessions and rate limits.")
	} else {
		memoryStore := sessionstore.NewMemoryStore(time.Minute)
		defer memoryStore.Close()
		sessionStore = memoryStore
		logger.Info("Using in-memory settlement sessions.")
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit, limiterStore)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool, sessionStore)
	serviceContainer := services.NewServiceContainer(cfg, repos, m)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}

	// Global middleware (cors, logging, recovery, metrics)
	r.Use(
		cors.New(corsConfig),
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.MetricsMiddleware(m),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, m, rateLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
