package models

import "time"

// FilterField names a multi-select filter as it appears on the API.
type FilterField string

const (
	FilterRegion        FilterField = "region"
	FilterGender        FilterField = "gender"
	FilterAgeRange      FilterField = "ageRange"
	FilterCategory      FilterField = "category"
	FilterTags          FilterField = "tags"
	FilterPaymentMethod FilterField = "paymentMethod"
)

// FilterFields is the fixed evaluation order of the multi-select filters.
var FilterFields = []FilterField{
	FilterRegion,
	FilterGender,
	FilterAgeRange,
	FilterCategory,
	FilterTags,
	FilterPaymentMethod,
}

// Column returns the relational column backing the field.
func (f FilterField) Column() string {
	switch f {
	case FilterRegion:
		return "customer_region"
	case FilterGender:
		return "gender"
	case FilterAgeRange:
		return "age_range"
	case FilterCategory:
		return "product_category"
	case FilterTags:
		return "tags"
	case FilterPaymentMethod:
		return "payment_method"
	}
	return ""
}

// DocumentKey returns the document store key backing the field.
func (f FilterField) DocumentKey() string {
	switch f {
	case FilterRegion:
		return "customerRegion"
	case FilterGender:
		return "gender"
	case FilterAgeRange:
		return "ageRange"
	case FilterCategory:
		return "productCategory"
	case FilterTags:
		return "tags"
	case FilterPaymentMethod:
		return "paymentMethod"
	}
	return ""
}

// ValueOf reads the field from a record.
func (f FilterField) ValueOf(t *Transaction) string {
	switch f {
	case FilterRegion:
		return t.CustomerRegion
	case FilterGender:
		return t.Gender
	case FilterAgeRange:
		return t.AgeRange
	case FilterCategory:
		return t.ProductCategory
	case FilterTags:
		return t.Tags
	case FilterPaymentMethod:
		return t.PaymentMethod
	}
	return ""
}

// IsValid reports whether f is one of the six filter fields.
func (f FilterField) IsValid() bool {
	return f.Column() != ""
}

// FilterSelection is the full set of user constraints for one retrieval.
// A field absent from Values, or mapped to an empty list, is unconstrained.
type FilterSelection struct {
	Search    string
	Values    map[FilterField][]string
	StartDate *time.Time
	EndDate   *time.Time
}

// Selected returns the chosen values for field.
func (s FilterSelection) Selected(field FilterField) []string {
	if s.Values == nil {
		return nil
	}
	return s.Values[field]
}

// With returns a copy of s with field set to values.
func (s FilterSelection) With(field FilterField, values ...string) FilterSelection {
	next := make(map[FilterField][]string, len(s.Values)+1)
	for k, v := range s.Values {
		next[k] = v
	}
	next[field] = values
	s.Values = next
	return s
}

// SortField is a sortable column.
type SortField string

const (
	SortByDate         SortField = "date"
	SortByQuantity     SortField = "quantity"
	SortByCustomerName SortField = "customerName"
)

// Column returns the relational column backing the sort field.
func (f SortField) Column() string {
	switch f {
	case SortByQuantity:
		return "quantity"
	case SortByCustomerName:
		return "customer_name"
	}
	return "date"
}

// DocumentKey returns the document store key backing the sort field.
func (f SortField) DocumentKey() string {
	return string(f)
}

// SortOrder is the direction of an ordering.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// SortSpec is a validated ordering request.
type SortSpec struct {
	Field SortField
	Order SortOrder
}

// DefaultSortSpec is newest first.
var DefaultSortSpec = SortSpec{Field: SortByDate, Order: SortDescending}

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// PageWindow is a 1-based page index and a bounded page size.
type PageWindow struct {
	Page  int
	Limit int
}

// Offset is the zero-based index of the first record of the page.
func (w PageWindow) Offset() int {
	if w.Page < 1 {
		return 0
	}
	return (w.Page - 1) * w.Limit
}

// ListParams is everything needed to retrieve one page.
type ListParams struct {
	Filters FilterSelection
	Sort    SortSpec
	Page    PageWindow
}
