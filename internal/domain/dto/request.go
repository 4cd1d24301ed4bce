// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"time"
)

// DefaultPantryID scopes requests that do not name a pantry.
const DefaultPantryID = "default"

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrNoIngredients is returned when a recipe request has no ingredients.
	ErrNoIngredients = &ValidationError{
		Field:   "ingredients",
		Message: "at least one ingredient is required",
	}
	// ErrInvalidPercentage is returned when a slider percentage is outside 0-100.
	ErrInvalidPercentage = &ValidationError{
		Field:   "percentages",
		Message: "must be between 0 and 100",
	}
	// ErrInvalidServings is returned when servings values are negative.
	ErrInvalidServings = &ValidationError{
		Field:   "servings",
		Message: "must not be negative",
	}
	// ErrInvalidBatchOverride is returned when an explicit batch selection
	// has a non-positive use quantity.
	ErrInvalidBatchOverride = &ValidationError{
		Field:   "batch_selections",
		Message: "use_quantity must be greater than 0",
	}
	// ErrInvalidBatch is returned when an inventory batch record is malformed.
	ErrInvalidBatch = &ValidationError{
		Field:   "batch",
		Message: "product_name is required and quantity must be non-negative",
	}
)

// BatchSelectionOverride is one entry of a manual per-batch selection from
// the picker UI.
type BatchSelectionOverride struct {
	// BatchID identifies the batch to draw from.
	BatchID string `json:"batch_id" binding:"required" example:"b1"`
	// UseQuantity is the amount to draw. Must be greater than 0.
	UseQuantity float64 `json:"use_quantity" binding:"required,gt=0" example:"1"`
}

// CompleteRecipeRequest represents the JSON request body for the recipe
// completion endpoint.
//
// Ingredients are free-text recipe lines; the service parses, matches, and
// allocates them against the pantry's inventory. When Preview is true the
// computed plan is returned without touching storage.
//
// @Description Request to consume a recipe's ingredients from the pantry
// @Example {"ingredients": ["2 cups of flour", "3 eggs"], "servings": 2, "recipe_servings": 4}
type CompleteRecipeRequest struct {
	// Ingredients is the recipe's ingredient list as free text.
	Ingredients []string `json:"ingredients" binding:"required,min=1" example:"2 cups of flour,3 eggs"`
	// Servings is the number of servings being cooked (0 = recipe default).
	Servings float64 `json:"servings,omitempty" example:"2" minimum:"0"`
	// RecipeServings is the yield of the recipe (0 = unknown, no scaling).
	RecipeServings float64 `json:"recipe_servings,omitempty" example:"4" minimum:"0"`
	// Percentages maps ingredient names to a 0-100 partial-consumption slider value.
	Percentages map[string]float64 `json:"percentages,omitempty"`
	// BatchSelections maps ingredient names to explicit per-batch draws,
	// replacing the FEFO plan for those ingredients.
	BatchSelections map[string][]BatchSelectionOverride `json:"batch_selections,omitempty"`
	// Preview computes the plan without applying it.
	Preview bool `json:"preview,omitempty" example:"false"`
} // @name CompleteRecipeRequest

// Validate performs custom validation on the request.
func (r *CompleteRecipeRequest) Validate() error {
	if len(r.Ingredients) == 0 {
		return ErrNoIngredients
	}
	if r.Servings < 0 || r.RecipeServings < 0 {
		return ErrInvalidServings
	}
	for _, pct := range r.Percentages {
		if pct < 0 || pct > 100 {
			return ErrInvalidPercentage
		}
	}
	for _, picks := range r.BatchSelections {
		for _, pick := range picks {
			if pick.UseQuantity <= 0 {
				return ErrInvalidBatchOverride
			}
		}
	}
	return nil
}

// MatchRecipeRequest represents the JSON request body for the ingredient
// availability endpoint.
//
// @Description Request to check which recipe ingredients the pantry covers
// @Example {"ingredients": ["2 cups of flour", "Salt to taste"]}
type MatchRecipeRequest struct {
	// Ingredients is the recipe's ingredient list as free text.
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
} // @name MatchRecipeRequest

// Validate performs custom validation on the request.
func (r *MatchRecipeRequest) Validate() error {
	if len(r.Ingredients) == 0 {
		return ErrNoIngredients
	}
	return nil
}

// AddBatchRequest represents the JSON request body for adding inventory.
//
// @Description Request to add a new inventory batch
// @Example {"product_name": "milk", "quantity": 1.5, "unit": "l", "expiration_date": "2025-02-01T00:00:00Z"}
type AddBatchRequest struct {
	// ProductName is the inventory label for the product.
	ProductName string `json:"product_name" binding:"required" example:"milk"`
	// Quantity is the amount added. Must be greater than 0.
	Quantity float64 `json:"quantity" binding:"required,gt=0" example:"1.5"`
	// Unit is the unit Quantity is expressed in.
	Unit string `json:"unit,omitempty" example:"l"`
	// ExpirationDate is when the batch expires; omit for non-perishables.
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
} // @name AddBatchRequest

// Validate performs custom validation on the request.
func (r *AddBatchRequest) Validate() error {
	if r.ProductName == "" || r.Quantity <= 0 {
		return ErrInvalidBatch
	}
	return nil
}
