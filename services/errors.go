package services

import "errors"

var (
	ErrKitchenNotFound      = errors.New("kitchen not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrMealUnavailable      = errors.New("meal unavailable or insufficient quantity")
	ErrCapacityExceeded     = errors.New("kitchen has reached its daily order limit")
	ErrInvalidTransition    = errors.New("order is not in a state that allows this action")
	ErrVerificationRequired = errors.New("kitchen verification pending")
	ErrInvalidQuantity      = errors.New("qty must be >= 1")
	ErrInvalidMealType      = errors.New("mealType must be breakfast, lunch, snacks, or dinner")
	ErrInvalidPayment       = errors.New("paymentMethod must be upi or card")
)
