package database

import (
	"path/filepath"
	"testing"
	"time"

	"truestate/internal/config"
	"truestate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("cassandra", &config.DatabaseConfig{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported relational driver")
}

func TestOpen_SQLiteFile(t *testing.T) {
	cfg := &config.DatabaseConfig{
		SQLitePath: filepath.Join(t.TempDir(), "sales.db"),
	}

	db, err := Open(config.StoreDriverSQLite, cfg)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.AutoMigrate())
	assert.NoError(t, db.CreateIndexes())
	assert.NoError(t, db.HealthCheck())
}

func TestInitialize_SQLite(t *testing.T) {
	cfg := &config.Config{
		Store: config.StoreConfig{Driver: config.StoreDriverSQLite},
		Database: config.DatabaseConfig{
			SQLitePath: filepath.Join(t.TempDir(), "sales.db"),
		},
	}

	db, err := Initialize(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.Migrator().HasTable(&models.Transaction{}))
}

func TestSetupTestDB_SeedAndCleanup(t *testing.T) {
	db := SetupTestDB(t)

	day := time.Date(2023, 3, 1, 10, 0, 0, 0, time.UTC)
	SeedTransactions(t, db,
		NewTestTransaction("T1", day),
		NewTestTransaction("T2", day.AddDate(0, 0, 1)),
	)

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	CleanupTestDB(t, db)

	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
