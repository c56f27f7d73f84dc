package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"truestate/internal/config"
	"truestate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenStore_Memory(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreDriverMemory}}

	store, err := OpenStore(context.Background(), cfg, testLogger())
	require.NoError(t, err)
	assert.Equal(t, config.StoreDriverMemory, store.Driver)

	inserted, err := store.Repository.CreateBatch(context.Background(), []models.Transaction{
		{TransactionID: "T1", Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), inserted)

	require.NoError(t, store.Close(context.Background()))
	assert.Error(t, store.Repository.Ping(context.Background()))
}

func TestOpenStore_SQLite(t *testing.T) {
	cfg := &config.Config{
		Store:    config.StoreConfig{Driver: config.StoreDriverSQLite},
		Database: config.DatabaseConfig{SQLitePath: filepath.Join(t.TempDir(), "truestate.db")},
	}

	store, err := OpenStore(context.Background(), cfg, testLogger())
	require.NoError(t, err)
	defer store.Close(context.Background())

	require.NoError(t, store.Repository.Ping(context.Background()))
	count, err := store.Repository.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestOpenStore_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "redis"}}

	_, err := OpenStore(context.Background(), cfg, testLogger())

	assert.ErrorContains(t, err, "unsupported store driver")
}
