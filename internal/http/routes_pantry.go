package http

import (
	"github.com/gin-gonic/gin"
)

// PantryRoutes handles recipe and inventory route registration.
type PantryRoutes struct {
	recipeHandler    *RecipeHandler
	inventoryHandler *InventoryHandler
}

// NewPantryRoutes creates a new PantryRoutes instance.
func NewPantryRoutes(recipeHandler *RecipeHandler, inventoryHandler *InventoryHandler) *PantryRoutes {
	return &PantryRoutes{
		recipeHandler:    recipeHandler,
		inventoryHandler: inventoryHandler,
	}
}

// RegisterRoutes registers recipe and inventory routes to the API group.
func (r *PantryRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	recipes := rg.Group("/recipes")
	recipes.POST("/complete", r.recipeHandler.CompleteRecipe)
	recipes.POST("/match", r.recipeHandler.MatchRecipe)

	if r.inventoryHandler != nil {
		rg.GET("/batches", r.inventoryHandler.ListBatches)
		rg.POST("/batches", r.inventoryHandler.AddBatch)
		rg.DELETE("/batches/:id", r.inventoryHandler.DeleteBatch)
	}
}

// GetRecipeHandler returns the underlying recipe handler.
func (r *PantryRoutes) GetRecipeHandler() *RecipeHandler {
	return r.recipeHandler
}
