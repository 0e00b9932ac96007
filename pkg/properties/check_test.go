package properties

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-props/pkg/models"
)

func TestInputTypeFor(t *testing.T) {
	tests := []struct {
		pt       models.PropertyType
		expected models.InputType
	}{
		{models.PropertyTypeString, models.InputTypeString},
		{models.PropertyTypeBool, models.InputTypeBoolean},
		{models.PropertyTypeInt8, models.InputTypeNumber},
		{models.PropertyTypeInt16, models.InputTypeNumber},
		{models.PropertyTypeInt32, models.InputTypeNumber},
		{models.PropertyTypeInt64, models.InputTypeNumber},
		{models.PropertyTypeUint8, models.InputTypeNumber},
		{models.PropertyTypeUint16, models.InputTypeNumber},
		{models.PropertyTypeUint32, models.InputTypeNumber},
		{models.PropertyTypeUint64, models.InputTypeNumber},
		{models.PropertyTypeFloat32, models.InputTypeNumber},
		{models.PropertyTypeFloat64, models.InputTypeNumber},
		{models.PropertyType("Vector3"), models.InputTypeString},
	}

	for _, tt := range tests {
		t.Run(string(tt.pt), func(t *testing.T) {
			assert.Equal(t, tt.expected, InputTypeFor(tt.pt))
		})
	}
}

func TestCheckValue(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		pt      models.PropertyType
		wantErr error
	}{
		{"uint32 negative", "-1", models.PropertyTypeUint32, ErrNegativeValue},
		{"uint32 negative fraction", "-0.5", models.PropertyTypeUint32, ErrNegativeValue},
		{"uint32 zero", "0", models.PropertyTypeUint32, nil},
		{"uint32 positive", "42", models.PropertyTypeUint32, nil},
		{"uint32 partial minus", "-", models.PropertyTypeUint32, nil},
		{"uint32 decimal", "4.5", models.PropertyTypeUint32, ErrNotInteger},
		{"uint8 negative", "-3", models.PropertyTypeUint8, ErrNegativeValue},
		{"int32 negative allowed", "-7", models.PropertyTypeInt32, nil},
		{"int32 decimal", "4.5", models.PropertyTypeInt32, ErrNotInteger},
		{"int64 trailing point", "4.", models.PropertyTypeInt64, ErrNotInteger},
		{"float32 decimal", "4.5", models.PropertyTypeFloat32, nil},
		{"float64 decimal", "2.5", models.PropertyTypeFloat64, nil},
		{"float64 negative decimal", "-2.5", models.PropertyTypeFloat64, nil},
		{"string with point", "v1.2", models.PropertyTypeString, nil},
		{"unknown type with point", "1.5", models.PropertyType("Vector3"), nil},
		{"bool", "true", models.PropertyTypeBool, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckValue(tt.value, tt.pt, InputTypeFor(tt.pt))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.value, verr.Value)
		})
	}
}

func TestValidationErrorMessages(t *testing.T) {
	err := CheckValue("-1", models.PropertyTypeUint32, models.InputTypeNumber)
	assert.EqualError(t, err, "-1 should be greater than 0")

	err = CheckValue("4.5", models.PropertyTypeInt16, models.InputTypeNumber)
	assert.EqualError(t, err, "4.5 should be an integer")
}

func TestCheckValueFloatKindsNeverRejectDecimals(t *testing.T) {
	values := []string{"0.1", "1.0", "-3.25", "1e-3", "."}
	for _, pt := range []models.PropertyType{models.PropertyTypeFloat32, models.PropertyTypeFloat64} {
		for _, v := range values {
			assert.NoError(t, CheckValue(v, pt, models.InputTypeNumber), "%s %s", pt, v)
		}
	}
}

func TestCheckValueIntegerKindsRejectDecimals(t *testing.T) {
	for _, pt := range models.KnownPropertyTypes {
		if !IsIntegerType(pt) {
			continue
		}
		err := CheckValue("12.0", pt, InputTypeFor(pt))
		assert.ErrorIs(t, err, ErrNotInteger, "%s", pt)
	}
}
