package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/i18n"
	"github.com/guttosm/pantry-service/internal/metrics"
	"github.com/guttosm/pantry-service/internal/middleware"
	"github.com/guttosm/pantry-service/internal/repository"
	"github.com/guttosm/pantry-service/internal/service"
)

// RecipeHandler provides HTTP handlers for recipe completion routes.
type RecipeHandler struct {
	consumption   service.ConsumptionTransaction
	parser        service.IngredientParser
	matcher       service.IngredientMatcher
	pantry        service.PantryService
	audit         service.AuditService
	defaultPantry string
}

// RecipeHandlerOption configures a RecipeHandler.
type RecipeHandlerOption func(*RecipeHandler)

// WithAuditService attaches an audit trail sink to the handler.
func WithAuditService(audit service.AuditService) RecipeHandlerOption {
	return func(h *RecipeHandler) {
		h.audit = audit
	}
}

// WithDefaultPantry sets the pantry scope used when a request names none.
func WithDefaultPantry(id string) RecipeHandlerOption {
	return func(h *RecipeHandler) {
		if id != "" {
			h.defaultPantry = id
		}
	}
}

// NewRecipeHandler creates a new RecipeHandler instance.
func NewRecipeHandler(
	consumption service.ConsumptionTransaction,
	parser service.IngredientParser,
	matcher service.IngredientMatcher,
	pantry service.PantryService,
	opts ...RecipeHandlerOption,
) *RecipeHandler {
	h := &RecipeHandler{
		consumption:   consumption,
		parser:        parser,
		matcher:       matcher,
		pantry:        pantry,
		defaultPantry: dto.DefaultPantryID,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// pantryID returns the pantry scope for the request, falling back to the
// handler's configured default.
func pantryID(c *gin.Context, fallback string) string {
	if id := c.Query("pantry_id"); id != "" {
		return id
	}
	if fallback != "" {
		return fallback
	}
	return dto.DefaultPantryID
}

// CompleteRecipe handles POST /api/recipes/complete requests.
//
// @Summary      Complete a recipe against the pantry
// @Description  Parses the recipe's free-text ingredient lines, matches them against the pantry's inventory, and allocates batches first-expired-first-out. Servings scaling, per-ingredient percentage sliders, and explicit per-batch selections adjust the plan. With preview=true the computed plan is returned without touching storage; otherwise the deltas are applied atomically and the request fails with 409 when the inventory changed underneath. Supports idempotency via Idempotency-Key header.
// @Tags         Recipes
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        pantry_id query string false "Pantry scope (defaults to 'default')"
// @Param        request body dto.CompleteRecipeRequest true "Recipe and consumption overrides"
// @Success      200 {object} dto.SuccessResponse "Computed plan, applied unless preview"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Conflict - inventory changed during apply"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/recipes/complete [post]
func (h *RecipeHandler) CompleteRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CompleteRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		metrics.RecordCompletion(0, "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationIngredients, err)
		return
	}

	pantry := pantryID(c, h.defaultPantry)

	snapshot, err := h.pantry.Snapshot(c.Request.Context(), pantry)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
		return
	}

	start := time.Now()
	result := h.consumption.CompleteRecipe(req.Ingredients, snapshot, overridesFromRequest(req))
	duration := time.Since(start)

	metrics.RecordShortfalls(len(result.InsufficientItems))

	if req.Preview {
		metrics.RecordCompletion(duration, "preview")
		builder.SuccessOK(result)
		return
	}

	if err := h.pantry.Apply(c.Request.Context(), pantry, result.Deltas); err != nil {
		if errors.Is(err, repository.ErrStaleSnapshot) {
			metrics.RecordCompletion(duration, "conflict")
			builder.Error(http.StatusConflict, i18n.ErrKeyStaleInventory, err)
			return
		}
		metrics.RecordCompletion(duration, "error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	depleted := 0
	for _, delta := range result.Deltas {
		if delta.Depleted {
			depleted++
		}
	}
	metrics.RecordDepletions(depleted)
	metrics.RecordCompletion(duration, "success")

	h.recordAudit(c, pantry, "complete_recipe", "Recipe completed", map[string]interface{}{
		"ingredients": len(req.Ingredients),
		"deltas":      len(result.Deltas),
		"fulfilled":   result.Fulfilled(),
	})

	builder.SuccessOK(result)
}

// MatchRecipe handles POST /api/recipes/match requests.
//
// @Summary      Check recipe availability
// @Description  Parses the recipe's ingredient lines and reports which ones the pantry covers, which are missing, and the overall match percentage. Read-only.
// @Tags         Recipes
// @Accept       json
// @Produce      json
// @Param        pantry_id query string false "Pantry scope (defaults to 'default')"
// @Param        request body dto.MatchRecipeRequest true "Recipe ingredient lines"
// @Success      200 {object} dto.SuccessResponse "Availability summary"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/recipes/match [post]
func (h *RecipeHandler) MatchRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.MatchRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationIngredients, err)
		return
	}

	snapshot, err := h.pantry.Snapshot(c.Request.Context(), pantryID(c, h.defaultPantry))
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
		return
	}

	parsed := make([]model.ParsedIngredient, 0, len(req.Ingredients))
	for _, line := range req.Ingredients {
		parsed = append(parsed, h.parser.Parse(line))
	}

	products := make([]string, 0, len(snapshot))
	seen := make(map[string]struct{}, len(snapshot))
	for _, batch := range snapshot {
		if _, ok := seen[batch.ProductName]; ok {
			continue
		}
		seen[batch.ProductName] = struct{}{}
		products = append(products, batch.ProductName)
	}

	builder.SuccessOK(h.matcher.Match(parsed, products))
}

// recordAudit writes an audit entry when an audit sink is configured.
func (h *RecipeHandler) recordAudit(c *gin.Context, pantry, action, message string, fields map[string]interface{}) {
	if h.audit == nil {
		return
	}

	entry := &model.AuditEntry{
		Timestamp:  time.Now(),
		Level:      "info",
		Message:    message,
		RequestID:  middleware.GetRequestID(c),
		PantryID:   pantry,
		ActionType: action,
		Fields:     fields,
	}
	_ = h.audit.Record(c.Request.Context(), entry)
}

// overridesFromRequest converts the request's override DTOs to the service form.
func overridesFromRequest(req dto.CompleteRecipeRequest) service.Overrides {
	o := service.Overrides{
		Servings:       req.Servings,
		RecipeServings: req.RecipeServings,
		Percentages:    req.Percentages,
	}

	if len(req.BatchSelections) > 0 {
		o.BatchSelections = make(map[string][]model.BatchPickResult, len(req.BatchSelections))
		for ingredient, picks := range req.BatchSelections {
			converted := make([]model.BatchPickResult, 0, len(picks))
			for _, pick := range picks {
				converted = append(converted, model.BatchPickResult{
					BatchID:     pick.BatchID,
					UseQuantity: pick.UseQuantity,
				})
			}
			o.BatchSelections[ingredient] = converted
		}
	}

	return o
}
