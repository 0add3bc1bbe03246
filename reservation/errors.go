// Package reservation defines the reservation entity and the validated value
// objects it is built from. Every value is checked once, at construction.
package reservation

// ValidationError is returned when a raw string fails a value object's
// format constraint. Message is the fixed, user-facing constraint text.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
