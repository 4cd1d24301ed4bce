// Package i18n provides internationalization support for the pantry service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyStaleInventory indicates the inventory snapshot went stale
	// before the consumption plan could be applied.
	ErrKeyStaleInventory = "error.stale_inventory"
	// ErrKeyValidationIngredients indicates an invalid ingredients list.
	ErrKeyValidationIngredients = "error.validation.ingredients"
	// ErrKeyValidationBatch indicates an invalid inventory batch payload.
	ErrKeyValidationBatch = "error.validation.batch"
	// ErrKeyBatchNotFound indicates the named batch does not exist.
	ErrKeyBatchNotFound = "error.batch_not_found"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyRecipeCompleted indicates a committed recipe completion.
	SuccessKeyRecipeCompleted = "success.recipe_completed"
	// SuccessKeyRecipePreviewed indicates a computed (not applied) plan.
	SuccessKeyRecipePreviewed = "success.recipe_previewed"
	// SuccessKeyBatchAdded indicates a new inventory batch was stored.
	SuccessKeyBatchAdded = "success.batch_added"
)
