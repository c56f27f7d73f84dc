package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"truestate/internal/models"
	"truestate/internal/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const createBatchSize = 500

// transactionRepository implements TransactionRepositoryInterface on a relational store through GORM
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// List counts and pages the matching rows inside one read transaction
func (r *transactionRepository) List(ctx context.Context, predicate query.Predicate, ordering query.Ordering, window models.PageWindow) ([]models.Transaction, int64, error) {
	if err := checkWindow(window); err != nil {
		return nil, 0, err
	}

	var transactions []models.Transaction
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := applyPredicate(tx.Model(&models.Transaction{}), predicate).
			Count(&total).Error; err != nil {
			return fmt.Errorf("failed to count transactions: %w", err)
		}

		if int64(window.Offset()) >= total {
			transactions = []models.Transaction{}
			return nil
		}

		q := applyOrdering(applyPredicate(tx.Model(&models.Transaction{}), predicate), ordering)
		if err := q.Offset(window.Offset()).
			Limit(window.Limit).
			Find(&transactions).Error; err != nil {
			return fmt.Errorf("failed to get transactions: %w", err)
		}
		return nil
	}, r.snapshotOptions())
	if err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

// snapshotOptions asks postgres for one snapshot across both statements.
// SQLite transactions are already serialized.
func (r *transactionRepository) snapshotOptions() *sql.TxOptions {
	if r.db.Dialector.Name() == "postgres" {
		return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	}
	return nil
}

// DistinctValues returns the sorted, non-empty distinct values of a filter column
func (r *transactionRepository) DistinctValues(ctx context.Context, field models.FilterField) ([]string, error) {
	if err := checkField(field); err != nil {
		return nil, err
	}

	column := field.Column()
	var values []string
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Distinct().
		Where(fmt.Sprintf("%s IS NOT NULL AND %s <> ?", column, column), "").
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}}).
		Pluck(column, &values).Error; err != nil {
		return nil, fmt.Errorf("failed to get distinct %s: %w", field, err)
	}
	return values, nil
}

// CreateBatch inserts transactions in chunks, skipping ids that already exist
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []models.Transaction) (int64, error) {
	if len(transactions) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "transaction_id"}},
		DoNothing: true,
	}).CreateInBatches(&transactions, createBatchSize)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to create batch transactions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteAll removes every transaction
func (r *transactionRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Count returns the number of stored transactions
func (r *transactionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// Ping checks that the database connection is alive
func (r *transactionRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// applyPredicate encodes a predicate as WHERE conditions
func applyPredicate(q *gorm.DB, p query.Predicate) *gorm.DB {
	if p.Search != "" {
		pattern := query.ContainsPattern(p.Search)
		q = q.Where(`(LOWER(customer_name) LIKE ? ESCAPE '\' OR LOWER(phone_number) LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	for _, c := range p.Conditions {
		values := make([]interface{}, len(c.Values))
		for i, v := range c.Values {
			values[i] = v
		}
		q = q.Where(clause.IN{Column: clause.Column{Name: c.Field.Column()}, Values: values})
	}

	if p.From != nil {
		q = q.Where(clause.Gte{Column: clause.Column{Name: "date"}, Value: p.From.UTC()})
	}
	if p.To != nil {
		q = q.Where(clause.Lte{Column: clause.Column{Name: "date"}, Value: p.To.UTC()})
	}

	return q
}

// applyOrdering encodes an ordering as ORDER BY with a transaction_id tiebreak
func applyOrdering(q *gorm.DB, o query.Ordering) *gorm.DB {
	if o.Field == models.SortByCustomerName {
		direction := "ASC"
		if o.Descending {
			direction = "DESC"
		}
		q = q.Order("LOWER(customer_name) " + direction)
	} else {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Field.Column()}, Desc: o.Descending})
	}
	return q.Order(clause.OrderByColumn{Column: clause.Column{Name: "transaction_id"}})
}
