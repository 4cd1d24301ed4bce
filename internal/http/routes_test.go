package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/pantry-service/internal/repository"
	"github.com/guttosm/pantry-service/internal/service"
)

func newTestHandlers() (*RecipeHandler, *InventoryHandler) {
	parser := service.NewIngredientParserService()
	matcher := service.NewIngredientMatcherService()
	picker := service.NewBatchPickerService()
	rules := service.NewQuantityRuleResolverService()
	consumption := service.NewConsumptionService(parser, matcher, picker, rules)
	pantry := service.NewPantryService(repository.NewMemoryBatchesRepository())

	return NewRecipeHandler(consumption, parser, matcher, pantry), NewInventoryHandler(pantry)
}

func TestNewPantryRoutes(t *testing.T) {
	recipeHandler, inventoryHandler := newTestHandlers()

	routes := NewPantryRoutes(recipeHandler, inventoryHandler)

	assert.NotNil(t, routes)
	assert.NotNil(t, routes.recipeHandler)
	assert.NotNil(t, routes.inventoryHandler)
}

func TestPantryRoutes_RegisterRoutes(t *testing.T) {
	recipeHandler, inventoryHandler := newTestHandlers()
	routes := NewPantryRoutes(recipeHandler, inventoryHandler)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterRoutes(api, &RouterConfig{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/recipes/complete"},
		{http.MethodPost, "/api/recipes/match"},
		{http.MethodGet, "/api/batches"},
		{http.MethodPost, "/api/batches"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			// Should not return 404 - route exists
			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestPantryRoutes_RegisterRoutes_WithoutInventoryHandler(t *testing.T) {
	recipeHandler, _ := newTestHandlers()
	routes := NewPantryRoutes(recipeHandler, nil)

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterRoutes(api, &RouterConfig{})

	// Recipe routes should exist
	req := httptest.NewRequest(http.MethodPost, "/api/recipes/complete", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEqual(t, http.StatusNotFound, w.Code)

	// Inventory routes should NOT exist
	req2 := httptest.NewRequest(http.MethodGet, "/api/batches", nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusNotFound, w2.Code)
}

func TestPantryRoutes_GetRecipeHandler(t *testing.T) {
	recipeHandler, inventoryHandler := newTestHandlers()
	routes := NewPantryRoutes(recipeHandler, inventoryHandler)

	handler := routes.GetRecipeHandler()

	assert.NotNil(t, handler)
	assert.Equal(t, routes.recipeHandler, handler)
}
