package database

import (
	"testing"
	"time"

	"truestate/internal/config"
	"truestate/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory SQLite database with the transactions schema.
// The pool is pinned to one connection so every query sees the same database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// NewTestTransaction builds a valid transaction with the given id and date
func NewTestTransaction(id string, date time.Time) models.Transaction {
	return models.Transaction{
		TransactionID:      id,
		Date:               date.UTC(),
		CustomerID:         "CUST-" + id,
		CustomerName:       "Test Customer",
		PhoneNumber:        "9000000000",
		Gender:             "Female",
		Age:                30,
		AgeRange:           "26-35",
		CustomerRegion:     "North",
		CustomerType:       "Regular",
		ProductID:          "PROD-1",
		ProductName:        "Test Product",
		Brand:              "Test Brand",
		ProductCategory:    "Electronics",
		Tags:               "gadgets",
		Quantity:           1,
		PricePerUnit:       decimal.NewFromInt(100),
		DiscountPercentage: decimal.Zero,
		TotalAmount:        decimal.NewFromInt(100),
		FinalAmount:        decimal.NewFromInt(100),
		PaymentMethod:      "UPI",
		OrderStatus:        "Completed",
		DeliveryType:       "Standard",
		StoreID:            "ST-1",
		StoreLocation:      "Mumbai",
		SalespersonID:      "EMP-1",
		EmployeeName:       "Test Employee",
	}
}

// SeedTransactions inserts transactions directly, failing the test on error
func SeedTransactions(t *testing.T, db *DB, transactions ...models.Transaction) {
	t.Helper()

	if len(transactions) == 0 {
		return
	}
	if err := db.Create(&transactions).Error; err != nil {
		t.Fatalf("failed to seed transactions: %v", err)
	}
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM transactions").Error; err != nil {
		t.Logf("failed to cleanup table transactions: %v", err)
	}
}
