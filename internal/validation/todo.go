package validation

import (
	"fmt"
	"unicode/utf8"
)

const (
	DescriptionField     = "description"
	DescriptionMinLength = 5
	DescriptionMaxLength = 255
)

// Description checks the length of an already extracted description.
// Length is counted in characters, not bytes.
func Description(description string) error {
	ve := &ValidationError{}
	n := utf8.RuneCountInString(description)
	switch {
	case n == 0:
		ve.Add(DescriptionField, ErrorTypeRequired, "The description is required.")
	case n < DescriptionMinLength || n > DescriptionMaxLength:
		ve.Add(DescriptionField, ErrorTypeInvalidLength, fmt.Sprintf(
			"The description must be between %d and %d characters long, got %d.",
			DescriptionMinLength, DescriptionMaxLength, n))
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}

// DescriptionValues validates the raw submitted values of the description
// field and returns the single accepted description.
func DescriptionValues(values []string) (string, error) {
	switch len(values) {
	case 0:
		ve := &ValidationError{}
		ve.Add(DescriptionField, ErrorTypeRequired, "The description is required.")
		return "", ve
	case 1:
	default:
		ve := &ValidationError{}
		ve.Add(DescriptionField, ErrorTypeInvalidType, "The description must be a single string.")
		return "", ve
	}

	if err := Description(values[0]); err != nil {
		return "", err
	}
	return values[0], nil
}
