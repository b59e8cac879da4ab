package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"woodshop/internal/domain/catalogs/client"
	"woodshop/internal/domain/catalogs/material"
	"woodshop/internal/infrastructure/http/v1/dto"
	"woodshop/internal/infrastructure/http/v1/handlers"
	"woodshop/internal/infrastructure/http/v1/middleware"
	"woodshop/internal/infrastructure/storage/postgres"
	"woodshop/internal/infrastructure/storage/postgres/catalog_repo"
	"woodshop/pkg/logger"
)

// Database is what the router needs from the storage layer.
// *postgres.Pool satisfies it.
type Database interface {
	postgres.ConnProvider
	handlers.Pinger
}

// RouterConfig holds router configuration.
type RouterConfig struct {
	// DB provides connections for repositories and the readiness probe
	DB Database

	// Logger for request logging
	Logger *logger.Logger

	// Development enables gin debug mode
	Development bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Development {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger.WithComponent("http")))
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.DB)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	registerCatalogRoutes(api, cfg)

	return router
}

// registerCatalogRoutes wires repository, service and handler for each catalog.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	base := handlers.NewBaseHandler()

	// Clients
	{
		repo := catalog_repo.NewClientRepo(cfg.DB)
		service := client.NewService(repo)
		handler := handlers.NewCatalogHandler(base, handlers.CatalogHandlerConfig[*client.Client, dto.ClientRequest]{
			Service:    service,
			EntityName: "client",
			MapRequest: dto.ClientRequest.ToEntity,
		})
		RegisterCatalogRoutes(rg.Group("/clients"), handler)
	}

	// Materials
	{
		repo := catalog_repo.NewMaterialRepo(cfg.DB)
		service := material.NewService(repo)
		handler := handlers.NewCatalogHandler(base, handlers.CatalogHandlerConfig[*material.Material, dto.MaterialRequest]{
			Service:    service,
			EntityName: "material",
			MapRequest: dto.MaterialRequest.ToEntity,
		})
		RegisterCatalogRoutes(rg.Group("/materials"), handler)
	}
}
