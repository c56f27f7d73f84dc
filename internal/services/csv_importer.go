package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"truestate/internal/models"
	"truestate/internal/repositories"
	"truestate/internal/validation"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const DefaultImportBatchSize = 1000

// Dataset column headers
const (
	colTransactionID      = "Transaction ID"
	colDate               = "Date"
	colCustomerID         = "Customer ID"
	colCustomerName       = "Customer Name"
	colPhoneNumber        = "Phone Number"
	colGender             = "Gender"
	colAge                = "Age"
	colCustomerRegion     = "Customer Region"
	colCustomerType       = "Customer Type"
	colProductID          = "Product ID"
	colProductName        = "Product Name"
	colBrand              = "Brand"
	colProductCategory    = "Product Category"
	colTags               = "Tags"
	colQuantity           = "Quantity"
	colPricePerUnit       = "Price per Unit"
	colDiscountPercentage = "Discount Percentage"
	colTotalAmount        = "Total Amount"
	colFinalAmount        = "Final Amount"
	colPaymentMethod      = "Payment Method"
	colOrderStatus        = "Order Status"
	colDeliveryType       = "Delivery Type"
	colStoreID            = "Store ID"
	colStoreLocation      = "Store Location"
	colSalespersonID      = "Salesperson ID"
	colEmployeeName       = "Employee Name"
)

var requiredColumns = []string{colTransactionID, colDate}

var ErrMissingColumn = errors.New("required column missing from header")

// ImportReport summarizes one import run. Skipped counts rows whose
// transaction id was already stored; Rejected counts rows that were unusable.
type ImportReport struct {
	RowsRead int
	Inserted int64
	Skipped  int64
	Rejected int
	Batches  int
	Duration time.Duration
}

// CSVImporter streams a dataset CSV into the store in batches
type CSVImporter struct {
	repo      repositories.TransactionRepositoryInterface
	batchSize int
	metrics   MetricsRecorderInterface
	logger    QueryLoggerInterface
}

// NewCSVImporter creates an importer writing batchSize records per store call
func NewCSVImporter(
	repo repositories.TransactionRepositoryInterface,
	batchSize int,
	metrics MetricsRecorderInterface,
	logger QueryLoggerInterface,
) *CSVImporter {
	if batchSize < 1 {
		batchSize = DefaultImportBatchSize
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	if logger == nil {
		logger = NewQueryLogger(slog.Default())
	}
	return &CSVImporter{
		repo:      repo,
		batchSize: batchSize,
		metrics:   metrics,
		logger:    logger,
	}
}

// Import parses r on one goroutine and writes batches on another, so parsing
// overlaps store round trips. Rows without a transaction id or a parseable
// date are rejected and logged; every other field is parsed leniently.
func (im *CSVImporter) Import(ctx context.Context, r io.Reader) (*ImportReport, error) {
	start := time.Now()

	if err := models.ValidateBuckets(models.AgeBuckets); err != nil {
		return nil, fmt.Errorf("invalid age buckets: %w", err)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns := indexColumns(header)
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	report := &ImportReport{}
	batches := make(chan []models.Transaction, 2)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(batches)

		batch := make([]models.Transaction, 0, im.batchSize)
		line := 1
		for {
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			line++
			if err != nil {
				return fmt.Errorf("failed to read CSV line %d: %w", line, err)
			}
			report.RowsRead++

			t, reason := columns.transaction(record)
			if reason != "" {
				report.Rejected++
				im.metrics.IncrementCounter(MetricImportRows, map[string]string{"status": "rejected"})
				im.logger.LogRowRejected(gctx, line, reason)
				continue
			}

			batch = append(batch, t)
			if len(batch) < im.batchSize {
				continue
			}
			select {
			case batches <- batch:
			case <-gctx.Done():
				return gctx.Err()
			}
			batch = make([]models.Transaction, 0, im.batchSize)
		}

		if len(batch) > 0 {
			select {
			case batches <- batch:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	g.Go(func() error {
		for batch := range batches {
			inserted, err := im.repo.CreateBatch(gctx, batch)
			if err != nil {
				return fmt.Errorf("failed to store batch %d: %w", report.Batches+1, err)
			}
			report.Batches++
			report.Inserted += inserted
			report.Skipped += int64(len(batch)) - inserted

			im.metrics.RecordGauge(MetricImportRows, float64(inserted), map[string]string{"status": "inserted"})
			im.logger.LogImportBatch(gctx, report.Batches, inserted)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Duration = time.Since(start)
	im.logger.LogImportCompleted(ctx, report)
	return report, nil
}

// Load writes already built transactions in batches
func (im *CSVImporter) Load(ctx context.Context, transactions []models.Transaction) (*ImportReport, error) {
	start := time.Now()
	report := &ImportReport{RowsRead: len(transactions)}

	for begin := 0; begin < len(transactions); begin += im.batchSize {
		end := min(begin+im.batchSize, len(transactions))
		batch := transactions[begin:end]

		inserted, err := im.repo.CreateBatch(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("failed to store batch %d: %w", report.Batches+1, err)
		}
		report.Batches++
		report.Inserted += inserted
		report.Skipped += int64(len(batch)) - inserted
		im.logger.LogImportBatch(ctx, report.Batches, inserted)
	}

	report.Duration = time.Since(start)
	im.logger.LogImportCompleted(ctx, report)
	return report, nil
}

type columnIndex map[string]int

func indexColumns(header []string) columnIndex {
	columns := make(columnIndex, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}
	return columns
}

func (c columnIndex) get(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (c columnIndex) integer(record []string, name string) int {
	n, ok := validation.ParseLeadingInt(c.get(record, name))
	if !ok {
		return 0
	}
	return n
}

func (c columnIndex) amount(record []string, name string) decimal.Decimal {
	d, err := decimal.NewFromString(c.get(record, name))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// transaction builds a record from a CSV row, or returns why it was rejected
func (c columnIndex) transaction(record []string) (models.Transaction, string) {
	id := c.get(record, colTransactionID)
	if id == "" {
		return models.Transaction{}, "missing transaction id"
	}

	date, ok := validation.ParseDate(c.get(record, colDate))
	if !ok {
		return models.Transaction{}, fmt.Sprintf("unparseable date %q", c.get(record, colDate))
	}

	age := c.integer(record, colAge)
	ageRange, _ := models.BucketForAge(age)

	return models.Transaction{
		TransactionID:      id,
		Date:               date,
		CustomerID:         c.get(record, colCustomerID),
		CustomerName:       c.get(record, colCustomerName),
		PhoneNumber:        c.get(record, colPhoneNumber),
		Gender:             c.get(record, colGender),
		Age:                age,
		AgeRange:           ageRange,
		CustomerRegion:     c.get(record, colCustomerRegion),
		CustomerType:       c.get(record, colCustomerType),
		ProductID:          c.get(record, colProductID),
		ProductName:        c.get(record, colProductName),
		Brand:              c.get(record, colBrand),
		ProductCategory:    c.get(record, colProductCategory),
		Tags:               c.get(record, colTags),
		Quantity:           c.integer(record, colQuantity),
		PricePerUnit:       c.amount(record, colPricePerUnit),
		DiscountPercentage: c.amount(record, colDiscountPercentage),
		TotalAmount:        c.amount(record, colTotalAmount),
		FinalAmount:        c.amount(record, colFinalAmount),
		PaymentMethod:      c.get(record, colPaymentMethod),
		OrderStatus:        c.get(record, colOrderStatus),
		DeliveryType:       c.get(record, colDeliveryType),
		StoreID:            c.get(record, colStoreID),
		StoreLocation:      c.get(record, colStoreLocation),
		SalespersonID:      c.get(record, colSalespersonID),
		EmployeeName:       c.get(record, colEmployeeName),
	}, ""
}
