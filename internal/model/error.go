package model

// Standard error codes for API responses.
const (
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeItemUnavailable    = "ITEM_UNAVAILABLE"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeInvalidStatus      = "INVALID_STATUS"
	ErrCodeFoodNotFound       = "FOOD_NOT_FOUND"
	ErrCodeOrderNotFound      = "ORDER_NOT_FOUND"
	ErrCodeDuplicateEmail     = "DUPLICATE_EMAIL"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthenticated    = "UNAUTHENTICATED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure surfaced directly to the caller.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors.
var (
	ErrEmptyCart          = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrItemUnavailable    = NewDomainError(ErrCodeItemUnavailable, "Food item not available")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidStatus      = NewDomainError(ErrCodeInvalidStatus, "Invalid status")
	ErrFoodNotFound       = NewDomainError(ErrCodeFoodNotFound, "Food item not found")
	ErrOrderNotFound      = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrDuplicateEmail     = NewDomainError(ErrCodeDuplicateEmail, "Email is already registered")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Invalid email or password")
	ErrForbidden          = NewDomainError(ErrCodeForbidden, "Access denied")
)
