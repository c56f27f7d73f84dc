package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"truestate/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore holds the client and the transactions collection
type MongoStore struct {
	Client     *mongo.Client
	Collection *mongo.Collection
}

// ConnectMongo dials the document store and pings the primary within selectionTimeout
func ConnectMongo(ctx context.Context, cfg *config.MongoConfig, selectionTimeout time.Duration) (*MongoStore, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongo URI is not configured")
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(selectionTimeout).
		SetConnectTimeout(selectionTimeout)

	ctx, cancel := context.WithTimeout(ctx, selectionTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo at %s: %w", cfg.MaskedURI(), err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo at %s: %w", cfg.MaskedURI(), err)
	}

	slog.Info("connected to mongo",
		"uri", cfg.MaskedURI(),
		"database", cfg.Database,
		"collection", cfg.Collection,
	)

	return &MongoStore{
		Client:     client,
		Collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Close disconnects the client
func (s *MongoStore) Close(ctx context.Context) error {
	if err := s.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongo: %w", err)
	}
	return nil
}
