package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Recette-specific errors
	ErrRecetteNotFound    = "RECETTE_NOT_FOUND"
	ErrRecetteInvalidData = "RECETTE_INVALID_DATA"

	// Ingredient-specific errors
	ErrIngredientNotFound    = "INGREDIENT_NOT_FOUND"
	ErrIngredientInvalidData = "INGREDIENT_INVALID_DATA"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
