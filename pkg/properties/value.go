package properties

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/pluqqy/pluqqy-props/pkg/models"
)

// FormatValue renders a committed value as editable text
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// ParseValue converts edit text into the typed value committed for pt.
// Integers become int64, unsigned integers uint64, float32 stays float32,
// float64 becomes float64. String and unknown kinds keep the text verbatim.
func ParseValue(text string, pt models.PropertyType) (any, error) {
	trimmed := strings.TrimSpace(text)

	switch {
	case pt == models.PropertyTypeBool:
		b, err := strconv.ParseBool(trimmed)
		if err != nil {
			return nil, invalid(text, pt)
		}
		return b, nil

	case IsUnsignedType(pt):
		u, err := strconv.ParseUint(trimmed, 10, bitSize(pt))
		if err != nil {
			return nil, invalid(text, pt)
		}
		return u, nil

	case IsIntegerType(pt):
		i, err := strconv.ParseInt(trimmed, 10, bitSize(pt))
		if err != nil {
			return nil, invalid(text, pt)
		}
		return i, nil

	case pt == models.PropertyTypeFloat32:
		f, err := strconv.ParseFloat(trimmed, 32)
		if err != nil {
			return nil, invalid(text, pt)
		}
		return float32(f), nil

	case pt == models.PropertyTypeFloat64:
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, invalid(text, pt)
		}
		return f, nil
	}

	return text, nil
}

func invalid(text string, pt models.PropertyType) error {
	return fmt.Errorf("%w: %q is not a valid %s", ErrInvalidValue, text, pt)
}

// Normalize converts a committed value of any Go type into the canonical
// representation ParseValue would produce, so values decoded from YAML
// (int, float64) compare equal to freshly parsed edits. Values that do not
// parse are returned unchanged.
func Normalize(v any, pt models.PropertyType) any {
	if v == nil {
		if InputTypeFor(pt) == models.InputTypeString {
			return ""
		}
		return nil
	}
	parsed, err := ParseValue(FormatValue(v), pt)
	if err != nil {
		return v
	}
	return parsed
}

// Equal compares two values after normalizing both to pt
func Equal(a, b any, pt models.PropertyType) bool {
	return reflect.DeepEqual(Normalize(a, pt), Normalize(b, pt))
}
