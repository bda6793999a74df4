// internal/core/domain/errors.go
package domain

import "errors"

// Sentinel errors for the warehouse core. Adapters match on these with
// errors.Is and turn them into user-visible messages; the core never
// terminates the process on any of them.
var (
	// ErrClientNotFound is returned when a client identifier is unknown.
	ErrClientNotFound = errors.New("client not found")
	// ErrProductNotFound is returned when a product identifier is unknown.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidQuantity is returned for non-positive quantities.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrInvalidAmount is returned for non-positive payment amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInvalidTransition is returned when a session event is not
	// permitted from the current state. The session is left unchanged.
	ErrInvalidTransition = errors.New("invalid session transition")
	// ErrClientRequired is returned when an event needs an attached
	// client identifier and none was provided.
	ErrClientRequired = errors.New("client id is required")
)

// IsNotFound reports whether err is a missing client or product.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrClientNotFound) || errors.Is(err, ErrProductNotFound)
}

// IsInvalidArgument reports whether err is a malformed-input error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrClientRequired)
}
