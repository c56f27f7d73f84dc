package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingTransactionID = errors.New("transaction id is required")
	ErrMissingDate          = errors.New("transaction date is required")
	ErrInvalidAgeRange      = errors.New("age range is not a known bucket")
)

// Transaction is one sales line of the dataset. Records are read-only once loaded.
type Transaction struct {
	ID                 uint            `gorm:"primaryKey" json:"-"`
	TransactionID      string          `gorm:"type:varchar(64);not null;uniqueIndex" json:"transactionId"`
	Date               time.Time       `gorm:"not null;index" json:"date"`
	CustomerID         string          `gorm:"type:varchar(64)" json:"customerId"`
	CustomerName       string          `gorm:"type:varchar(255);index" json:"customerName"`
	PhoneNumber        string          `gorm:"type:varchar(32);index" json:"phoneNumber"`
	Gender             string          `gorm:"type:varchar(32);index" json:"gender"`
	Age                int             `json:"age"`
	AgeRange           string          `gorm:"type:varchar(16);index" json:"ageRange,omitempty"`
	CustomerRegion     string          `gorm:"type:varchar(64);index" json:"customerRegion"`
	CustomerType       string          `gorm:"type:varchar(64)" json:"customerType"`
	ProductID          string          `gorm:"type:varchar(64)" json:"productId"`
	ProductName        string          `gorm:"type:varchar(255)" json:"productName"`
	Brand              string          `gorm:"type:varchar(128)" json:"brand"`
	ProductCategory    string          `gorm:"type:varchar(128);index" json:"productCategory"`
	Tags               string          `gorm:"type:varchar(255);index" json:"tags"`
	Quantity           int             `gorm:"index" json:"quantity"`
	PricePerUnit       decimal.Decimal `gorm:"type:decimal(12,2)" json:"pricePerUnit"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2)" json:"discountPercentage"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(14,2)" json:"totalAmount"`
	FinalAmount        decimal.Decimal `gorm:"type:decimal(14,2)" json:"finalAmount"`
	PaymentMethod      string          `gorm:"type:varchar(64);index" json:"paymentMethod"`
	OrderStatus        string          `gorm:"type:varchar(64)" json:"orderStatus"`
	DeliveryType       string          `gorm:"type:varchar(64)" json:"deliveryType"`
	StoreID            string          `gorm:"type:varchar(64)" json:"storeId"`
	StoreLocation      string          `gorm:"type:varchar(128)" json:"storeLocation"`
	SalespersonID      string          `gorm:"type:varchar(64)" json:"salespersonId"`
	EmployeeName       string          `gorm:"type:varchar(255)" json:"employeeName"`
}

// TableName specifies the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}

// Validate checks the record invariants required before it is stored.
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.TransactionID) == "" {
		return ErrMissingTransactionID
	}
	if t.Date.IsZero() {
		return ErrMissingDate
	}
	if t.AgeRange != "" && !IsAgeBucket(t.AgeRange) {
		return ErrInvalidAgeRange
	}
	return nil
}

// TransactionPage is one window of a filtered, ordered listing.
type TransactionPage struct {
	Transactions []Transaction
	Pagination   Pagination
}

// Pagination carries the page-count metadata returned alongside a page.
type Pagination struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalItems      int64 `json:"totalItems"`
	ItemsPerPage    int   `json:"itemsPerPage"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// FilterOptions lists the distinct selectable values per filter field.
type FilterOptions struct {
	Regions        []string `json:"regions"`
	Genders        []string `json:"genders"`
	AgeRanges      []string `json:"ageRanges"`
	Categories     []string `json:"categories"`
	Tags           []string `json:"tags"`
	PaymentMethods []string `json:"paymentMethods"`
}

// Set stores values under the option list that belongs to field.
func (o *FilterOptions) Set(field FilterField, values []string) {
	switch field {
	case FilterRegion:
		o.Regions = values
	case FilterGender:
		o.Genders = values
	case FilterAgeRange:
		o.AgeRanges = values
	case FilterCategory:
		o.Categories = values
	case FilterTags:
		o.Tags = values
	case FilterPaymentMethod:
		o.PaymentMethods = values
	}
}
