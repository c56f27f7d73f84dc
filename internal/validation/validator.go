package validation

import (
	"reflect"
	"strings"
	"sync"

	"truestate/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules for listing parameters
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("sort_field", validateSortField)
	_ = v.RegisterValidation("sort_order", validateSortOrder)
	_ = v.RegisterValidation("age_range", validateAgeRange)
	_ = v.RegisterValidation("filter_field", validateFilterField)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		return name
	})

	return &Validator{validate: v}
}

// Is reports whether value passes the given tag expression.
func (v *Validator) Is(value interface{}, tag string) bool {
	return v.validate.Var(value, tag) == nil
}

func validateSortField(fl validator.FieldLevel) bool {
	switch models.SortField(fl.Field().String()) {
	case models.SortByDate, models.SortByQuantity, models.SortByCustomerName:
		return true
	}
	return false
}

func validateSortOrder(fl validator.FieldLevel) bool {
	switch models.SortOrder(fl.Field().String()) {
	case models.SortAscending, models.SortDescending:
		return true
	}
	return false
}

func validateAgeRange(fl validator.FieldLevel) bool {
	return models.IsAgeBucket(fl.Field().String())
}

func validateFilterField(fl validator.FieldLevel) bool {
	return models.FilterField(fl.Field().String()).IsValid()
}
