package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devassignment/member-service/internal/pkg/config"
)

// defaultTimeout bounds individual repository operations.
const defaultTimeout = 10 * time.Second

// connectTimeout bounds the initial dial and ping at startup.
const connectTimeout = 10 * time.Second

// Connect dials the configured MongoDB instance and pings it before handing
// out the client, so a bad URI fails at boot instead of on the first request.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes creates the indexes both repositories rely on. It runs once
// at startup, before the server accepts traffic; the unique constraints it
// installs are what the duplicate-key error mapping in the repositories
// depends on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := NewMemberRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("member indexes: %w", err)
	}
	if err := NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	return nil
}
