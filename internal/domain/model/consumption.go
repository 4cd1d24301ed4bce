package model

// Consumption error codes reported in ConsumptionResult.Errors.
const (
	// ErrCodeOverrideClamped means a manual batch selection asked for more
	// than the batch holds; the draw was clamped to what was available.
	ErrCodeOverrideClamped = "override_clamped"
	// ErrCodeUnknownBatch means a manual batch selection named a batch that
	// is not in the inventory snapshot (or holds a different product).
	ErrCodeUnknownBatch = "unknown_batch"
)

// ConsumptionError is a hard failure recorded while building a consumption
// plan. The transaction keeps going; errors describe what was rejected or
// adjusted so the caller can surface them.
type ConsumptionError struct {
	Ingredient string `json:"ingredient" example:"milk"`
	BatchID    string `json:"batch_id,omitempty" example:"b1"`
	Code       string `json:"code" example:"override_clamped"`
	Message    string `json:"message" example:"requested 3 but batch holds 2"`
}

// InsufficientItem reports an ingredient whose requirement could not be
// fully covered by inventory: what was needed versus what was consumed.
type InsufficientItem struct {
	Ingredient string  `json:"ingredient" example:"eggs"`
	Needed     float64 `json:"needed" example:"5"`
	NeededUnit string  `json:"needed_unit" example:"piece"`
	Consumed   float64 `json:"consumed" example:"3"`
}

// BatchDelta is one inventory mutation the storage collaborator must apply:
// decrement the batch by UseQuantity, leaving Remaining, and mark it
// depleted when Depleted is set. The core computes deltas; it never writes.
type BatchDelta struct {
	BatchID     string  `json:"batch_id" example:"b1"`
	ProductName string  `json:"product_name" example:"milk"`
	UseQuantity float64 `json:"use_quantity" example:"1"`
	Remaining   float64 `json:"remaining" example:"0.5"`
	Unit        string  `json:"unit" example:"l"`
	Depleted    bool    `json:"depleted" example:"false"`
}

// IngredientConsumption summarizes the outcome for one recipe ingredient.
type IngredientConsumption struct {
	// Ingredient is the parsed ingredient name.
	Ingredient string `json:"ingredient" example:"flour"`
	// ProductName is the matched inventory product, empty when missing.
	ProductName string `json:"product_name,omitempty" example:"wheat flour"`
	// Required is the scaled amount the recipe asked for.
	Required float64 `json:"required" example:"2"`
	// Consumed is the amount the plan actually draws.
	Consumed float64 `json:"consumed" example:"2"`
	// Remaining is the uncovered part of the requirement (never negative).
	Remaining float64 `json:"remaining" example:"0"`
	// Unit is the unit the amounts are expressed in.
	Unit string `json:"unit" example:"cup"`
	// Selections lists the per-batch draws backing Consumed.
	Selections []BatchPickResult `json:"selections"`
}

// ConsumptionResult is the complete outcome of a recipe completion attempt:
// per-ingredient accounting, the flat delta list for storage, and the
// structured warnings and errors gathered along the way.
//
// Partial success is the normal mode: shortfalls land in InsufficientItems,
// not in Errors, and the caller decides whether to block or warn.
//
// @Description Computed pantry mutations and completion summary
type ConsumptionResult struct {
	Ingredients       []IngredientConsumption `json:"ingredients"`
	Deltas            []BatchDelta            `json:"deltas"`
	InsufficientItems []InsufficientItem      `json:"insufficient_items"`
	Errors            []ConsumptionError      `json:"errors"`
}

// Fulfilled reports whether every ingredient was fully covered.
func (r ConsumptionResult) Fulfilled() bool {
	return len(r.InsufficientItems) == 0
}
