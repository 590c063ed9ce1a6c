package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/agrismart/marketplace-api/docs"
	"github.com/agrismart/marketplace-api/internal/api/handler"
	"github.com/agrismart/marketplace-api/internal/api/middleware"
	"github.com/agrismart/marketplace-api/internal/core/domain"
	"github.com/agrismart/marketplace-api/internal/core/service"
	"github.com/agrismart/marketplace-api/internal/core/token"
	mongodb "github.com/agrismart/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/agrismart/marketplace-api/internal/infrastructure/db/redis"
)

// Options carries the configuration the router needs beyond its connections.
type Options struct {
	JWTSecret     string
	TokenTTL      time.Duration
	BcryptCost    int
	PriceCacheTTL time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("agrismart"))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	listings := mongodb.NewListingRepository(db)
	priceCache := redisdb.NewPriceCache(rdb, opts.PriceCacheTTL)

	issuer := token.NewIssuer(opts.JWTSecret, opts.TokenTTL)
	authService := service.NewAuthService(users, issuer, opts.BcryptCost, log)
	listingService := service.NewListingService(listings, users, log)
	priceService := service.NewPriceService(priceCache, log)

	authHandler := handler.NewAuthHandler(authService)
	listingHandler := handler.NewListingHandler(listingService)
	priceHandler := handler.NewPriceHandler(priceService)

	authenticated := middleware.Auth(issuer, users)
	farmersOnly := middleware.RequireRole(domain.RoleFarmer)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authenticated)

	// --- Listings ---
	e.GET("/listings", listingHandler.List)
	e.GET("/listings/:id", listingHandler.Get)
	e.POST("/listings", listingHandler.Create, authenticated, farmersOnly)
	e.PUT("/listings/:id", listingHandler.Update, authenticated, farmersOnly)
	e.DELETE("/listings/:id", listingHandler.Delete, authenticated, farmersOnly)

	// --- Prices ---
	e.GET("/prices", priceHandler.Insights)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
