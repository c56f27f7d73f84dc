package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	date := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name:        "valid transaction",
			transaction: Transaction{TransactionID: "T1", Date: date, AgeRange: "26-35"},
		},
		{
			name:        "valid without age range",
			transaction: Transaction{TransactionID: "T1", Date: date},
		},
		{
			name:        "blank transaction id",
			transaction: Transaction{TransactionID: "   ", Date: date},
			wantErr:     ErrMissingTransactionID,
		},
		{
			name:        "missing date",
			transaction: Transaction{TransactionID: "T1"},
			wantErr:     ErrMissingDate,
		},
		{
			name:        "unknown age range",
			transaction: Transaction{TransactionID: "T1", Date: date, AgeRange: "60-70"},
			wantErr:     ErrInvalidAgeRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_TableName(t *testing.T) {
	assert.Equal(t, "transactions", Transaction{}.TableName())
}

func TestTransaction_JSONShape(t *testing.T) {
	tx := Transaction{
		ID:            42,
		TransactionID: "T1",
		Date:          time.Date(2023, 5, 1, 10, 30, 0, 0, time.UTC),
		CustomerName:  "Neha Yadav",
		FinalAmount:   decimal.RequireFromString("1348.65"),
	}

	raw, err := json.Marshal(tx)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "T1", decoded["transactionId"])
	assert.Equal(t, "2023-05-01T10:30:00Z", decoded["date"])
	assert.Equal(t, "1348.65", decoded["finalAmount"])
	assert.NotContains(t, decoded, "ID")
	assert.NotContains(t, decoded, "ageRange")
}

func TestFilterOptions_Set(t *testing.T) {
	var options FilterOptions
	for _, field := range FilterFields {
		options.Set(field, []string{string(field)})
	}
	options.Set(FilterField("storeLocation"), []string{"ignored"})

	assert.Equal(t, []string{"region"}, options.Regions)
	assert.Equal(t, []string{"gender"}, options.Genders)
	assert.Equal(t, []string{"ageRange"}, options.AgeRanges)
	assert.Equal(t, []string{"category"}, options.Categories)
	assert.Equal(t, []string{"tags"}, options.Tags)
	assert.Equal(t, []string{"paymentMethod"}, options.PaymentMethods)
}
