package dto

import (
	"truestate/internal/models"
)

// ListTransactionsQuery is the raw, untrusted query string of GET /api/transactions.
// Every field is a string so malformed values degrade to defaults instead of failing binding.
type ListTransactionsQuery struct {
	Search        string   `query:"search"`
	Region        []string `query:"region"`
	Gender        []string `query:"gender"`
	AgeRange      []string `query:"ageRange"`
	Category      []string `query:"category"`
	Tags          []string `query:"tags"`
	PaymentMethod []string `query:"paymentMethod"`
	StartDate     string   `query:"startDate"`
	EndDate       string   `query:"endDate"`
	SortBy        string   `query:"sortBy"`
	SortOrder     string   `query:"sortOrder"`
	Page          string   `query:"page"`
	Limit         string   `query:"limit"`
}

// RawFilter returns the raw values supplied for a filter field.
func (q *ListTransactionsQuery) RawFilter(field models.FilterField) []string {
	switch field {
	case models.FilterRegion:
		return q.Region
	case models.FilterGender:
		return q.Gender
	case models.FilterAgeRange:
		return q.AgeRange
	case models.FilterCategory:
		return q.Category
	case models.FilterTags:
		return q.Tags
	case models.FilterPaymentMethod:
		return q.PaymentMethod
	}
	return nil
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Success    bool                 `json:"success"`
	Data       []models.Transaction `json:"data"`
	Pagination models.Pagination    `json:"pagination"`
}

// NewListTransactionsResponse wraps a page for the wire, never emitting a null data array.
func NewListTransactionsResponse(page *models.TransactionPage) ListTransactionsResponse {
	data := page.Transactions
	if data == nil {
		data = []models.Transaction{}
	}
	return ListTransactionsResponse{
		Success:    true,
		Data:       data,
		Pagination: page.Pagination,
	}
}

// FilterOptionsResponse represents the response of GET /api/filters/options
type FilterOptionsResponse struct {
	Success bool                 `json:"success"`
	Filters models.FilterOptions `json:"filters"`
}

// NewFilterOptionsResponse replaces nil option lists with empty arrays.
func NewFilterOptionsResponse(options *models.FilterOptions) FilterOptionsResponse {
	out := *options
	for _, list := range []*[]string{&out.Regions, &out.Genders, &out.AgeRanges, &out.Categories, &out.Tags, &out.PaymentMethods} {
		if *list == nil {
			*list = []string{}
		}
	}
	return FilterOptionsResponse{Success: true, Filters: out}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// FieldOptionsRequest names the filter field of GET /api/filters/options/:field
type FieldOptionsRequest struct {
	Field string `param:"field" json:"field" validate:"required,filter_field"`
}

// FieldOptionsResponse lists the distinct values of one filter field
type FieldOptionsResponse struct {
	Success bool     `json:"success"`
	Field   string   `json:"field"`
	Values  []string `json:"values"`
}

// NewFieldOptionsResponse never emits a null values array.
func NewFieldOptionsResponse(field string, values []string) FieldOptionsResponse {
	if values == nil {
		values = []string{}
	}
	return FieldOptionsResponse{Success: true, Field: field, Values: values}
}
