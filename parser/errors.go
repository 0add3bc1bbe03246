package parser

import (
	"errors"
	"fmt"

	"github.com/c360studio/reservemate/reservation"
)

// Parse error messages.
const (
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
	MessageUnknownCommand       = "Unknown command"
	MessageDuplicateFields      = "Multiple values specified for the following single-valued field(s): %s"
	MessageInvalidIndex         = "The reservation index must be a positive integer greater than 0."
)

// ParseError is returned for malformed or incomplete input. Message is
// shown to the user as is.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return e.Message }

func parseErrorf(format string, args ...any) error {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

func invalidFormat(usage string) error {
	return parseErrorf(MessageInvalidCommandFormat, usage)
}

// fromValidation surfaces a value object's constraint message.
func fromValidation(err error) error {
	var verr *reservation.ValidationError
	if errors.As(err, &verr) {
		return &ParseError{Message: verr.Message}
	}
	return &ParseError{Message: err.Error()}
}
