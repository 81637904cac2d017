package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/skycourier/backoffice/docs"
	"github.com/skycourier/backoffice/internal/api/handler"
	"github.com/skycourier/backoffice/internal/api/middleware"
	"github.com/skycourier/backoffice/internal/core/domain"
	"github.com/skycourier/backoffice/internal/core/ports"
)

// RouterDeps bundles everything the HTTP layer needs.
type RouterDeps struct {
	Lifecycle  ports.LifecycleService
	Conversion ports.ConversionService
	Auth       ports.AuthService

	Mongo *mongo.Database
	Redis *redis.Client

	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Handlers ---
	shipmentHandler := handler.NewShipmentHandler(deps.Lifecycle)
	quoteHandler := handler.NewQuoteHandler(deps.Conversion)
	authHandler := handler.NewAuthHandler(deps.Auth)
	auth := middleware.Auth(deps.JWTSecret)

	allRoles := middleware.RBAC(domain.RoleAdmin, domain.RoleOperations, domain.RoleFinance)
	opsRoles := middleware.RBAC(domain.RoleAdmin, domain.RoleOperations)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Shipment lifecycle routes ---
	v1 := e.Group("/v1", auth)
	v1.POST("/shipments", shipmentHandler.Create, opsRoles)
	v1.GET("/shipments", shipmentHandler.List, allRoles)
	v1.GET("/shipments/:shipment_number", shipmentHandler.Get, allRoles)
	v1.GET("/shipments/:shipment_number/history", shipmentHandler.History, allRoles)
	v1.POST("/shipments/:shipment_number/transition", shipmentHandler.Transition, opsRoles)
	v1.POST("/shipments/:shipment_number/assign-courier", shipmentHandler.AssignCourier, opsRoles)
	v1.PATCH("/shipments/:shipment_number", shipmentHandler.Update, opsRoles)
	v1.DELETE("/shipments/:shipment_number", shipmentHandler.Delete, adminOnly)

	// --- Quote conversion ---
	v1.POST("/quotes/:quote_id/convert", quoteHandler.Convert, opsRoles)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Liveness)            // liveness  - is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness - are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
