package database

import (
	"fmt"
	"log/slog"
	"time"

	"truestate/internal/config"
	"truestate/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// Open connects to the relational store selected by driver ("postgres" or "sqlite")
func Open(driver string, cfg *config.DatabaseConfig) (*DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.StoreDriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.StoreDriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported relational driver %q", driver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if driver == config.StoreDriverSQLite {
		// one writer; concurrent readers share the single connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(&models.Transaction{})
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateIndexes adds the expression indexes the case-insensitive search and sort use
func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_transactions_customer_name_lower ON transactions(LOWER(customer_name))",
		"CREATE INDEX IF NOT EXISTS idx_transactions_phone_number_lower ON transactions(LOWER(phone_number))",
		"CREATE INDEX IF NOT EXISTS idx_transactions_region_gender_age ON transactions(customer_region, gender, age_range)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_category_tags_payment ON transactions(product_category, tags, payment_method)",
	}

	var failed int
	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index", "query", query, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d indexes could not be created", failed, len(queries))
	}
	return nil
}

// Initialize opens the relational store and brings its schema up to date
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := Open(cfg.Store.Driver, &cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Store.Driver == config.StoreDriverPostgres && cfg.Database.AutoMigrate {
		if err := RunMigrations(cfg.Database.MigrationURL()); err != nil {
			slog.Warn("migration runner failed, falling back to GORM AutoMigrate", "error", err)
			if err := db.AutoMigrate(); err != nil {
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
		}
	} else if err := db.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("failed to create some indexes", "error", err)
	}

	slog.Info("database initialized", "driver", cfg.Store.Driver)

	return db, nil
}
