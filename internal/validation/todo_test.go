package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantErr     bool
		wantType    ErrorType
	}{
		{name: "empty", description: "", wantErr: true, wantType: ErrorTypeRequired},
		{name: "4 characters", description: "abcd", wantErr: true, wantType: ErrorTypeInvalidLength},
		{name: "5 characters", description: "abcde"},
		{name: "255 characters", description: strings.Repeat("a", 255)},
		{name: "256 characters", description: strings.Repeat("a", 256), wantErr: true, wantType: ErrorTypeInvalidLength},
		{name: "multibyte counted as characters", description: "ñandú"},
		{name: "255 multibyte characters", description: strings.Repeat("é", 255)},
		{name: "whitespace is not trimmed", description: "     "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Description(tt.description)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			ve, ok := AsValidationError(err)
			require.True(t, ok)
			require.Len(t, ve.Fields(), 1)
			assert.Equal(t, DescriptionField, ve.Fields()[0].Field)
			assert.Equal(t, tt.wantType, ve.Fields()[0].Type)
		})
	}
}

func TestDescriptionValues(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		want     string
		wantType ErrorType
	}{
		{name: "missing", values: nil, wantType: ErrorTypeRequired},
		{name: "not a single string", values: []string{"Buy milk", "Walk the dog"}, wantType: ErrorTypeInvalidType},
		{name: "too short", values: []string{"milk"}, wantType: ErrorTypeInvalidLength},
		{name: "valid", values: []string{"Walk the dog"}, want: "Walk the dog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DescriptionValues(tt.values)
			if tt.wantType == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			ve, ok := AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantType, ve.Fields()[0].Type)
			assert.Empty(t, got)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := Description("abc")
	ve, ok := AsValidationError(err)
	require.True(t, ok)

	assert.Equal(t, "The description must be between 5 and 255 characters long, got 3.", ve.Message())
	assert.Contains(t, ve.Error(), "validation error for field 'description'")
}

func TestValidationErrorEmpty(t *testing.T) {
	ve := &ValidationError{}
	assert.False(t, ve.HasErrors())
	assert.Nil(t, ve.Fields())
	assert.Equal(t, "Input validation failed", ve.Message())
	assert.Equal(t, "validation error", ve.Error())
}

func TestValidationErrorMultipleFields(t *testing.T) {
	ve := &ValidationError{}
	ve.Add("description", ErrorTypeRequired, "The description is required.")
	ve.Add("id", ErrorTypeInvalidType, "The id must be a number.")

	assert.True(t, ve.HasErrors())
	assert.Len(t, ve.Fields(), 2)
	assert.Equal(t, "The description is required. The id must be a number.", ve.Message())
	assert.Contains(t, ve.Error(), "2 errors occurred")
}
