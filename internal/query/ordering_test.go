package query

import (
	"testing"
	"time"

	"truestate/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(records []models.Transaction) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.TransactionID)
	}
	return out
}

func TestResolveOrdering_Defaults(t *testing.T) {
	o := ResolveOrdering(models.SortSpec{})
	assert.Equal(t, models.SortByDate, o.Field)
	assert.True(t, o.Descending)

	o = ResolveOrdering(models.SortSpec{Field: models.SortByQuantity, Order: models.SortAscending})
	assert.Equal(t, models.SortByQuantity, o.Field)
	assert.False(t, o.Descending)
}

func TestOrdering_Date(t *testing.T) {
	records := []models.Transaction{
		{TransactionID: "b", Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{TransactionID: "zero"},
		{TransactionID: "a", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	ResolveOrdering(models.SortSpec{Field: models.SortByDate, Order: models.SortDescending}).Sort(records)
	assert.Equal(t, []string{"a", "b", "zero"}, ids(records))

	ResolveOrdering(models.SortSpec{Field: models.SortByDate, Order: models.SortAscending}).Sort(records)
	assert.Equal(t, []string{"zero", "b", "a"}, ids(records))
}

func TestOrdering_QuantityWithTiebreak(t *testing.T) {
	records := []models.Transaction{
		{TransactionID: "T3", Quantity: 2},
		{TransactionID: "T1", Quantity: 5},
		{TransactionID: "T2", Quantity: 2},
		{TransactionID: "T0"},
	}

	ResolveOrdering(models.SortSpec{Field: models.SortByQuantity, Order: models.SortDescending}).Sort(records)

	// equal quantities stay in transactionId order in both directions
	assert.Equal(t, []string{"T1", "T2", "T3", "T0"}, ids(records))

	ResolveOrdering(models.SortSpec{Field: models.SortByQuantity, Order: models.SortAscending}).Sort(records)
	assert.Equal(t, []string{"T0", "T2", "T3", "T1"}, ids(records))
}

func TestOrdering_CustomerNameCaseInsensitive(t *testing.T) {
	records := []models.Transaction{
		{TransactionID: "1", CustomerName: "bob"},
		{TransactionID: "2", CustomerName: "Alice"},
		{TransactionID: "3", CustomerName: "Émile"},
		{TransactionID: "4", CustomerName: "ALICE"},
		{TransactionID: "5", CustomerName: "carol"},
	}

	ResolveOrdering(models.SortSpec{Field: models.SortByCustomerName, Order: models.SortAscending}).Sort(records)

	assert.Equal(t, []string{"2", "4", "1", "5", "3"}, ids(records))
}

func TestOrdering_IsTotalAndIdempotent(t *testing.T) {
	faker := gofakeit.New(42)
	records := make([]models.Transaction, 200)
	for i := range records {
		records[i] = models.Transaction{
			TransactionID: faker.UUID(),
			CustomerName:  faker.Name(),
			Quantity:      faker.IntRange(0, 5),
			Date:          faker.DateRange(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)),
		}
	}

	for _, spec := range []models.SortSpec{
		{Field: models.SortByDate, Order: models.SortAscending},
		{Field: models.SortByQuantity, Order: models.SortDescending},
		{Field: models.SortByCustomerName, Order: models.SortAscending},
	} {
		o := ResolveOrdering(spec)
		first := append([]models.Transaction(nil), records...)
		o.Sort(first)

		shuffled := append([]models.Transaction(nil), records...)
		faker.ShuffleAnySlice(shuffled)
		o.Sort(shuffled)

		require.Equal(t, ids(first), ids(shuffled), "ordering by %s must not depend on input order", spec.Field)

		compare := o.Comparator()
		for i := 1; i < len(first); i++ {
			assert.LessOrEqual(t, compare(&first[i-1], &first[i]), 0)
		}
	}
}
