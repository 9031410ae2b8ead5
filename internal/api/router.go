package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/aegean-rentals/dvd-catalog/internal/api/handler"
	"github.com/aegean-rentals/dvd-catalog/internal/api/middleware"
	"github.com/aegean-rentals/dvd-catalog/internal/core/domain"
	"github.com/aegean-rentals/dvd-catalog/internal/core/service"
	"github.com/aegean-rentals/dvd-catalog/internal/infrastructure/db/postgres"
	"github.com/aegean-rentals/dvd-catalog/internal/infrastructure/db/redis"
	"github.com/aegean-rentals/dvd-catalog/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *goredis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("dvd_catalog"))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(db)
	issuer := service.NewTokenIssuer(jwtSecret, tokenTTL)
	authService := service.NewAuthService(authRepo, issuer, log)
	authHandler := handler.NewAuthHandler(authService)

	dvdRepo := postgres.NewDvdRepository(db)
	dvdCache := redis.NewDvdCache(rdb)
	dvdService := service.NewDvdService(dvdRepo, dvdCache, log)
	dvdHandler := handler.NewDvdHandler(dvdService)

	// --- Auth routes (no token required) ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- Catalogue routes (employee role required) ---
	catalogue := e.Group("/catalogue", middleware.Auth(jwtSecret), middleware.RBAC(domain.RoleEmployee))
	catalogue.POST("", dvdHandler.Create)
	catalogue.GET("", dvdHandler.List)
	catalogue.GET("/:id", dvdHandler.Get)
	catalogue.PUT("/:id", dvdHandler.Update)
	catalogue.DELETE("/:id", dvdHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
