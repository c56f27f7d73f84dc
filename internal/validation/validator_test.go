package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sortRequest struct {
	SortBy    string `query:"sortBy" validate:"sort_field"`
	SortOrder string `json:"sortOrder" validate:"sort_order"`
	AgeRange  string `json:"ageRange,omitempty" validate:"omitempty,age_range"`
	Field     string `param:"field" json:"field" validate:"required,filter_field"`
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
	assert.NotNil(t, GetValidator().GetValidate())
}

func TestValidator_CustomTags(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.Is("customerName", "sort_field"))
	assert.False(t, v.Is("price", "sort_field"))
	assert.True(t, v.Is("desc", "sort_order"))
	assert.False(t, v.Is("DESC", "sort_order"))
	assert.True(t, v.Is("56+", "age_range"))
	assert.False(t, v.Is("60-70", "age_range"))
	assert.True(t, v.Is("paymentMethod", "filter_field"))
	assert.False(t, v.Is("storeLocation", "filter_field"))
}

func TestValidator_StructUsesWireNames(t *testing.T) {
	err := NewValidator().GetValidate().Struct(sortRequest{
		SortBy:    "price",
		SortOrder: "up",
		AgeRange:  "10-15",
		Field:     "",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	assert.ElementsMatch(t, []string{"sortBy", "sortOrder", "ageRange", "field"}, fields)
}

func TestValidator_StructValid(t *testing.T) {
	err := NewValidator().GetValidate().Struct(sortRequest{
		SortBy:    "date",
		SortOrder: "asc",
		Field:     "region",
	})

	assert.NoError(t, err)
}
