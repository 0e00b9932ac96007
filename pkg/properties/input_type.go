package properties

import "github.com/pluqqy/pluqqy-props/pkg/models"

// InputTypeFor maps a property type to the control that edits it.
// Unrecognised types fall back to a string control.
func InputTypeFor(pt models.PropertyType) models.InputType {
	switch {
	case pt == models.PropertyTypeString:
		return models.InputTypeString
	case IsNumberType(pt):
		return models.InputTypeNumber
	case pt == models.PropertyTypeBool:
		return models.InputTypeBoolean
	}
	return models.InputTypeString
}

// IsNumberType reports whether pt is any integer width or float precision
func IsNumberType(pt models.PropertyType) bool {
	return IsIntegerType(pt) || IsFloatType(pt)
}

// IsIntegerType reports whether pt is a signed or unsigned integer kind
func IsIntegerType(pt models.PropertyType) bool {
	switch pt {
	case models.PropertyTypeInt8, models.PropertyTypeInt16, models.PropertyTypeInt32, models.PropertyTypeInt64:
		return true
	}
	return IsUnsignedType(pt)
}

// IsUnsignedType reports whether pt is an unsigned integer kind of any width
func IsUnsignedType(pt models.PropertyType) bool {
	switch pt {
	case models.PropertyTypeUint8, models.PropertyTypeUint16, models.PropertyTypeUint32, models.PropertyTypeUint64:
		return true
	}
	return false
}

// IsFloatType reports whether pt is float32 or float64
func IsFloatType(pt models.PropertyType) bool {
	return pt == models.PropertyTypeFloat32 || pt == models.PropertyTypeFloat64
}

// bitSize returns the width used by strconv for numeric kinds
func bitSize(pt models.PropertyType) int {
	switch pt {
	case models.PropertyTypeInt8, models.PropertyTypeUint8:
		return 8
	case models.PropertyTypeInt16, models.PropertyTypeUint16:
		return 16
	case models.PropertyTypeInt32, models.PropertyTypeUint32, models.PropertyTypeFloat32:
		return 32
	}
	return 64
}
