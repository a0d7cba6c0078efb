package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming
// whitespace). Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateID checks that an id is a plausible row id (positive).
func ValidateID(fieldName string, id int64) error {
	if id <= 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be a positive id", fieldName),
		}
	}
	return nil
}

// ValidatePosition checks that a target position is non-negative. The
// store enforces the upper bound against the live row count.
func ValidatePosition(fieldName string, pos int) error {
	if pos < 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not be negative", fieldName),
		}
	}
	return nil
}
