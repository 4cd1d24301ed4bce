package model

// ParsedIngredient is the structured form of a free-text recipe ingredient.
//
// Quantity is nil when no numeric amount could be extracted. When a quantity
// is present but no unit word was recognized, Unit defaults to "piece".
// Original always carries the input string verbatim.
type ParsedIngredient struct {
	// Name is the ingredient name with quantity, unit, and filler words removed.
	Name string `json:"name" example:"flour"`
	// Quantity is the extracted amount, nil when none was found.
	Quantity *float64 `json:"quantity,omitempty" example:"2"`
	// Unit is the extracted unit word, empty when no quantity was found.
	Unit string `json:"unit,omitempty" example:"cup"`
	// Original is the raw ingredient string as received.
	Original string `json:"original_string" example:"2 cups of flour"`
}

// HasQuantity reports whether a numeric amount was extracted.
func (p ParsedIngredient) HasQuantity() bool {
	return p.Quantity != nil
}

// IngredientRequirement is the amount of one product a recipe completion
// needs. It is transient: derived per attempt, never persisted.
type IngredientRequirement struct {
	// IngredientName is the inventory product name to draw from.
	IngredientName string `json:"ingredient_name" example:"milk"`
	// RequiredQuantity is the amount needed. Always positive.
	RequiredQuantity float64 `json:"required_quantity" example:"0.5"`
	// Unit is the unit RequiredQuantity is expressed in.
	Unit string `json:"unit" example:"l"`
}

// MatchedIngredient pairs a parsed recipe ingredient with the inventory
// product it resolved to.
type MatchedIngredient struct {
	Ingredient  ParsedIngredient `json:"ingredient"`
	ProductName string           `json:"product_name" example:"whole milk"`
}

// MatchResult partitions a recipe's ingredients into those available in
// inventory and those missing, with an overall match percentage.
//
// @Description Availability of recipe ingredients against inventory
type MatchResult struct {
	// Available lists ingredients matched to an inventory product.
	Available []MatchedIngredient `json:"available"`
	// Missing lists ingredients with no inventory match.
	Missing []ParsedIngredient `json:"missing"`
	// MatchPercentage is available/total rounded to the nearest integer;
	// an empty recipe yields 0.
	MatchPercentage int `json:"match_percentage" example:"75"`
}
