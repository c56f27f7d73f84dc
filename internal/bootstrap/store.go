package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"truestate/internal/config"
	"truestate/internal/database"
	"truestate/internal/repositories"
)

// Store is an opened transaction store and the function releasing it
type Store struct {
	Repository repositories.TransactionRepositoryInterface
	Driver     string
	Close      func(ctx context.Context) error
}

// OpenStore connects the repository selected by cfg.Store.Driver
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres, config.StoreDriverSQLite:
		db, err := database.Initialize(cfg)
		if err != nil {
			return nil, err
		}
		return &Store{
			Repository: repositories.NewTransactionRepository(db.DB),
			Driver:     cfg.Store.Driver,
			Close:      func(context.Context) error { return db.Close() },
		}, nil

	case config.StoreDriverMongo:
		mongoStore, err := database.ConnectMongo(ctx, &cfg.Mongo, cfg.Store.SelectionTimeout)
		if err != nil {
			return nil, err
		}
		if err := repositories.EnsureTransactionIndexes(ctx, mongoStore.Collection); err != nil {
			logger.Warn("failed to create mongo indexes", "error", err)
		}
		return &Store{
			Repository: repositories.NewMongoTransactionRepository(mongoStore.Collection),
			Driver:     cfg.Store.Driver,
			Close:      mongoStore.Close,
		}, nil

	case config.StoreDriverMemory:
		repo := repositories.NewMemoryTransactionRepository()
		return &Store{
			Repository: repo,
			Driver:     cfg.Store.Driver,
			Close:      func(context.Context) error { return repo.Close() },
		}, nil
	}

	return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}
