// internal/common/database/mongodb.go
package database

import (
	"context"
	"fmt"
	"time"

	"insurance-mcp/internal/common/config"
	"insurance-mcp/internal/common/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient wraps the MongoDB client with the plan collection pinned.
// Access is read-only; the serving path never writes.
type MongoClient struct {
	Client     *mongo.Client
	collection *mongo.Collection
	timeout    time.Duration
}

// NewMongo creates a new MongoDB client against the configured database and
// collection, using the stable server API.
func NewMongo(cfg config.MongoDBConfig) (*MongoClient, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).SetServerAPIOptions(serverAPI)

	timeout := time.Duration(cfg.Timeout) * time.Millisecond
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongodb client: %w", err)
	}

	return &MongoClient{
		Client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		timeout:    timeout,
	}, nil
}

// Connect creates a client and verifies the deployment is reachable. A
// client whose ping fails is disconnected before the error is returned, so
// retry loops do not accumulate connection monitors.
func Connect(ctx context.Context, cfg config.MongoDBConfig) (*MongoClient, error) {
	client, err := NewMongo(cfg)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx); err != nil {
		_ = client.Close(ctx)
		return nil, err
	}
	return client, nil
}

// Ping tests the MongoDB connection
func (c *MongoClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.Client.Ping(ctx, readpref.Primary()); err != nil {
		return errors.NewStoreConnectionFailedError(err)
	}
	return nil
}

// Close disconnects the client
func (c *MongoClient) Close(ctx context.Context) error {
	if c.Client != nil {
		return c.Client.Disconnect(ctx)
	}
	return nil
}

// FindPlans runs a find against the plan collection and returns the raw
// documents in store iteration order. The filter is the generic map form of
// the store's filter grammar; an empty map returns the whole collection.
func (c *MongoClient) FindPlans(ctx context.Context, filter map[string]interface{}) ([]map[string]interface{}, error) {
	cursor, err := c.collection.Find(ctx, bson.M(filter))
	if err != nil {
		return nil, fmt.Errorf("plan query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []map[string]interface{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("plan cursor decode failed: %w", err)
	}

	return docs, nil
}
