package properties

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pluqqy/pluqqy-props/pkg/models"
)

// Validation failures. Both are user-correctable and never leave the widget.
var (
	ErrNegativeValue = errors.New("should be greater than 0")
	ErrNotInteger    = errors.New("should be an integer")
)

// ErrInvalidValue is returned when text cannot be converted to the property's kind
var ErrInvalidValue = errors.New("invalid value")

// ValidationError carries the offending input alongside the rule it broke
type ValidationError struct {
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// CheckValue runs the live validation rules for a single change. Negative
// numbers are rejected for every unsigned width (uint8 to uint64), and a
// decimal point is rejected in numeric controls of integer kinds.
func CheckValue(value string, pt models.PropertyType, it models.InputType) error {
	if IsUnsignedType(pt) && isNegative(value) {
		return &ValidationError{Value: value, Err: ErrNegativeValue}
	}

	if it == models.InputTypeNumber && !IsFloatType(pt) && HasDecimalPoint(value) {
		return &ValidationError{Value: value, Err: ErrNotInteger}
	}

	return nil
}

// HasDecimalPoint reports whether the text contains a decimal separator
func HasDecimalPoint(value string) bool {
	return strings.Contains(value, ".")
}

// isNegative only reports true for text that parses to a number below zero;
// partial input such as "-" is not negative yet.
func isNegative(value string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return false
	}
	return f < 0
}
