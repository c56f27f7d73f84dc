package query

import (
	"cmp"
	"slices"
	"strings"

	"truestate/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Ordering is a resolved sort: one key, one direction, and a transactionId
// tiebreak that always runs ascending.
type Ordering struct {
	Field      models.SortField
	Descending bool
}

// ResolveOrdering maps a validated sort spec to an Ordering. Unknown fields
// resolve to date.
func ResolveOrdering(spec models.SortSpec) Ordering {
	field := spec.Field
	switch field {
	case models.SortByDate, models.SortByQuantity, models.SortByCustomerName:
	default:
		field = models.SortByDate
	}
	return Ordering{
		Field:      field,
		Descending: spec.Order != models.SortAscending,
	}
}

// Comparator returns a total order over records. The returned function owns a
// collator and must not be shared between goroutines.
func (o Ordering) Comparator() func(a, b *models.Transaction) int {
	base := o.baseComparator()
	return func(a, b *models.Transaction) int {
		c := base(a, b)
		if o.Descending {
			c = -c
		}
		if c != 0 {
			return c
		}
		return strings.Compare(a.TransactionID, b.TransactionID)
	}
}

func (o Ordering) baseComparator() func(a, b *models.Transaction) int {
	switch o.Field {
	case models.SortByQuantity:
		return func(a, b *models.Transaction) int {
			return cmp.Compare(a.Quantity, b.Quantity)
		}
	case models.SortByCustomerName:
		collator := collate.New(language.English, collate.IgnoreCase)
		return func(a, b *models.Transaction) int {
			return collator.CompareString(a.CustomerName, b.CustomerName)
		}
	default:
		// zero time sorts as the oldest value
		return func(a, b *models.Transaction) int {
			return a.Date.Compare(b.Date)
		}
	}
}

// Sort orders records in place.
func (o Ordering) Sort(records []models.Transaction) {
	compare := o.Comparator()
	slices.SortStableFunc(records, func(a, b models.Transaction) int {
		return compare(&a, &b)
	})
}
