package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrorType represents the kind of rule a field failed
type ErrorType string

const (
	ErrorTypeRequired      ErrorType = "required"
	ErrorTypeInvalidType   ErrorType = "invalid_type"
	ErrorTypeInvalidLength ErrorType = "invalid_length"
)

// FieldError is a single failed rule for one field
type FieldError struct {
	Field   string
	Type    ErrorType
	Message string
}

func (fe *FieldError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", fe.Field, fe.Message)
}

// ValidationError collects every FieldError found while validating input
type ValidationError struct {
	errs *multierror.Error
}

// Add records a failed rule
func (ve *ValidationError) Add(field string, errorType ErrorType, message string) {
	ve.errs = multierror.Append(ve.errs, &FieldError{
		Field:   field,
		Type:    errorType,
		Message: message,
	})
}

// HasErrors returns true if at least one rule failed
func (ve *ValidationError) HasErrors() bool {
	return ve.errs.ErrorOrNil() != nil
}

// Fields returns the collected field errors in the order they were added
func (ve *ValidationError) Fields() []*FieldError {
	if ve.errs == nil {
		return nil
	}
	fields := make([]*FieldError, 0, len(ve.errs.Errors))
	for _, err := range ve.errs.Errors {
		var fe *FieldError
		if errors.As(err, &fe) {
			fields = append(fields, fe)
		}
	}
	return fields
}

// Message returns the text shown to the user
func (ve *ValidationError) Message() string {
	fields := ve.Fields()
	if len(fields) == 0 {
		return "Input validation failed"
	}
	messages := make([]string, 0, len(fields))
	for _, fe := range fields {
		messages = append(messages, fe.Message)
	}
	return strings.Join(messages, " ")
}

func (ve *ValidationError) Error() string {
	if !ve.HasErrors() {
		return "validation error"
	}
	return ve.errs.Error()
}

func (ve *ValidationError) Unwrap() error {
	return ve.errs.ErrorOrNil()
}

// AsValidationError reports whether err carries a ValidationError
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
