package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/i18n"
	"github.com/guttosm/pantry-service/internal/service"
	"go.mongodb.org/mongo-driver/mongo"
)

// InventoryHandler provides HTTP handlers for inventory batch routes.
type InventoryHandler struct {
	pantry        service.PantryService
	defaultPantry string
}

// InventoryHandlerOption configures an InventoryHandler.
type InventoryHandlerOption func(*InventoryHandler)

// WithInventoryDefaultPantry sets the pantry scope used when a request
// names none.
func WithInventoryDefaultPantry(id string) InventoryHandlerOption {
	return func(h *InventoryHandler) {
		if id != "" {
			h.defaultPantry = id
		}
	}
}

// NewInventoryHandler creates a new InventoryHandler instance.
func NewInventoryHandler(pantry service.PantryService, opts ...InventoryHandlerOption) *InventoryHandler {
	h := &InventoryHandler{
		pantry:        pantry,
		defaultPantry: dto.DefaultPantryID,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// ListBatches handles GET /api/batches requests.
//
// @Summary      List active batches
// @Description  Returns the pantry's active batches, oldest first. This is the inventory snapshot recipe completion allocates against.
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        pantry_id query string false "Pantry scope (defaults to 'default')"
// @Success      200 {object} dto.SuccessResponse "Active batches"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/batches [get]
func (h *InventoryHandler) ListBatches(c *gin.Context) {
	builder := NewResponseBuilder(c)

	batches, err := h.pantry.Snapshot(c.Request.Context(), pantryID(c, h.defaultPantry))
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
		return
	}

	if batches == nil {
		batches = []model.Batch{}
	}
	builder.SuccessOK(batches)
}

// AddBatch handles POST /api/batches requests.
//
// @Summary      Add an inventory batch
// @Description  Records new stock as a fresh batch. Quantity must be positive; expiration date is optional for non-perishables.
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        pantry_id query string false "Pantry scope (defaults to 'default')"
// @Param        request body dto.AddBatchRequest true "Batch to add"
// @Success      201 {object} dto.SuccessResponse "Created batch"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/batches [post]
func (h *InventoryHandler) AddBatch(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.AddBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationBatch, err)
		return
	}

	batch := model.Batch{
		ProductName:    req.ProductName,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		ExpirationDate: req.ExpirationDate,
		Status:         model.BatchStatusActive,
	}

	doc, err := h.pantry.AddBatch(c.Request.Context(), pantryID(c, h.defaultPantry), batch)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessCreated(doc)
}

// DeleteBatch handles DELETE /api/batches/:id requests.
//
// @Summary      Remove an inventory batch
// @Description  Deletes a batch outright, for stock that spoiled or was entered in error.
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        pantry_id query string false "Pantry scope (defaults to 'default')"
// @Param        id path string true "Batch ID"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Batch not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/batches/{id} [delete]
func (h *InventoryHandler) DeleteBatch(c *gin.Context) {
	builder := NewResponseBuilder(c)

	batchID := c.Param("id")
	if batchID == "" {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)
		return
	}

	if err := h.pantry.RemoveBatch(c.Request.Context(), pantryID(c, h.defaultPantry), batchID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyBatchNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(gin.H{"batch_id": batchID, "deleted": true})
}
