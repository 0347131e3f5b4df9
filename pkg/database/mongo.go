package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"around-backend/pkg/config"
)

var ErrFailedToConnect = errors.New("failed to connect to mongo")

// NewMongoConnection connects to the configured MongoDB deployment and
// returns a handle to the application database. Connection attempts are
// retried before giving up.
func NewMongoConnection(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	attempts := cfg.MongoRetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.MongoURL).
				SetConnectTimeout(cfg.MongoConnTimeout),
		)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				return client.Database(cfg.MongoDatabase), nil
			}
			_ = client.Disconnect(ctx)
		}

		time.Sleep(cfg.MongoRetryInterval)
	}

	return nil, ErrFailedToConnect
}
