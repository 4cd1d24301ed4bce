// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/guttosm/pantry-service/config"
	"github.com/guttosm/pantry-service/internal/http"
	"github.com/guttosm/pantry-service/internal/repository"
	"github.com/guttosm/pantry-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Routes        *http.PantryRoutes
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// mongoHealthChecker adapts the MongoDB ping to the health check interface.
type mongoHealthChecker struct {
	db *repository.MongoDB
}

func (c *mongoHealthChecker) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return c.db.HealthCheck(ctx)
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	// Storage: MongoDB when available, in-memory otherwise
	var batchesRepo repository.BatchesRepositoryInterface
	var auditService service.AuditService
	if dbComponents != nil {
		batchesRepo = dbComponents.BatchesRepo
		auditService = dbComponents.AuditService
	} else {
		batchesRepo = repository.NewMemoryBatchesRepository()
	}

	pantryService := service.NewPantryService(batchesRepo)

	recipeOpts := []http.RecipeHandlerOption{
		http.WithDefaultPantry(cfg.Consumption.DefaultPantry),
	}
	if auditService != nil {
		recipeOpts = append(recipeOpts, http.WithAuditService(auditService))
	}

	recipeHandler := http.NewRecipeHandler(
		services.Consumption,
		services.Parser,
		services.Matcher,
		pantryService,
		recipeOpts...,
	)
	inventoryHandler := http.NewInventoryHandler(
		pantryService,
		http.WithInventoryDefaultPantry(cfg.Consumption.DefaultPantry),
	)
	routes := http.NewPantryRoutes(recipeHandler, inventoryHandler)

	healthHandler := http.NewHealthHandler()
	if dbComponents != nil && dbComponents.DB != nil {
		healthHandler.RegisterChecker("mongodb", &mongoHealthChecker{db: dbComponents.DB})
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
	}

	return &RouterComponents{
		Routes:        routes,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
