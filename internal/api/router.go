package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storeops/backoffice-api/internal/api/handler"
	"github.com/storeops/backoffice-api/internal/api/middleware"
	"github.com/storeops/backoffice-api/internal/core/domain"
	"github.com/storeops/backoffice-api/internal/core/service"
	mongodb "github.com/storeops/backoffice-api/internal/infrastructure/db/mongo"
	redisdb "github.com/storeops/backoffice-api/internal/infrastructure/db/redis"
	"github.com/storeops/backoffice-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Dependencies ---
	issuer := service.NewJWTIssuer(cfg.JWTSecret)
	admin := service.AdminCredentials{Email: cfg.AdminEmail, Password: cfg.AdminPassword}

	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(admin, authRepo, issuer, log)
	authHandler := handler.NewAuthHandler(authService)

	orderRepo := mongodb.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo, log)
	orderHandler := handler.NewOrderHandler(orderService)

	resourceRepo := mongodb.NewResourceRepository(db)
	resourceService := service.NewResourceService(resourceRepo, log)

	reportCache := redisdb.NewReportCache(rdb)
	reportService := service.NewReportService(orderRepo, resourceRepo, reportCache, log)
	reportHandler := handler.NewReportHandler(reportService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/signup", authHandler.Signup)
	e.POST("/api/logout", authHandler.Logout)

	// --- Order routes ---
	e.POST("/api/orders", orderHandler.Create)
	e.GET("/api/orders", orderHandler.List)
	e.PUT("/api/orders/:id", orderHandler.Update)
	e.DELETE("/api/orders/:id", orderHandler.Delete)

	// --- Back-office resource groups (bearer token required) ---
	for _, res := range domain.Resources {
		h := handler.NewResourceHandler(resourceService, res)
		g := e.Group("/api/"+string(res), authMiddleware)
		g.POST("", h.Create)
		g.GET("", h.List)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}

	// --- Reports (bearer token required) ---
	e.GET("/api/reports/summary", reportHandler.Summary, authMiddleware)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
