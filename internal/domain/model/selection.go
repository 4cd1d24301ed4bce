package model

// BatchPickResult records one draw from one batch inside an allocation plan.
//
// @Description Amount drawn from a single batch
// @Example {"batch_id": "b1", "use_quantity": 1, "unit": "piece"}
type BatchPickResult struct {
	// BatchID identifies the batch drawn from.
	BatchID string `json:"batch_id" example:"b1"`
	// UseQuantity is the amount drawn. Always positive.
	UseQuantity float64 `json:"use_quantity" example:"1"`
	// Unit is the unit UseQuantity is expressed in.
	Unit string `json:"unit" example:"piece"`
}

// BatchSelection is an allocation plan for one ingredient requirement:
// the ordered batch draws plus fulfillment accounting.
//
// Invariants: TotalFulfilled equals the sum of the selection amounts,
// TotalFulfilled+Shortfall equals the requirement, and no draw exceeds
// either the ask or the batch it comes from.
//
// @Description FEFO allocation plan for one ingredient
type BatchSelection struct {
	// Selections lists the draws in consumption order (soonest expiry first).
	Selections []BatchPickResult `json:"selections"`
	// TotalFulfilled is the quantity covered by the selections.
	TotalFulfilled float64 `json:"total_fulfilled" example:"2"`
	// Shortfall is the portion of the requirement that could not be covered.
	Shortfall float64 `json:"shortfall" example:"0"`
	// IsFulfilled is true when Shortfall is zero.
	IsFulfilled bool `json:"is_fulfilled" example:"true"`
}

// EmptySelection returns the plan for a requirement with no eligible batches:
// nothing selected, the full requirement as shortfall.
func EmptySelection(required float64) BatchSelection {
	return BatchSelection{
		Selections: []BatchPickResult{},
		Shortfall:  required,
	}
}
