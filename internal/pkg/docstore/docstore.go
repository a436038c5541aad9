package docstore

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/fitkart/FitKart/internal/pkg/env"
)

var client *mongo.Client

// SetupDocStore connects to the MongoDB instance that holds the
// reviews collection. Connection failures are logged, not fatal; the
// shop works without reviews.
func SetupDocStore() {
	uri := env.GetEnv("MONGO_URI", fmt.Sprintf("mongodb://%s:%s",
		env.GetEnv("MONGO_HOST", "localhost"),
		env.GetEnv("MONGO_PORT", "27017"),
	))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Printf("Warning: Could not connect to MongoDB: %v", err)
		return
	}

	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		log.Printf("Warning: MongoDB ping failed: %v", err)
	} else {
		log.Printf("Successfully connected to MongoDB")
	}

	client = c
}

// GetClient returns the Mongo client instance
func GetClient() *mongo.Client {
	if client == nil {
		SetupDocStore()
	}
	return client
}

// Database returns the application database handle
func Database() *mongo.Database {
	c := GetClient()
	if c == nil {
		return nil
	}
	return c.Database(env.GetEnv("MONGO_DB", "fitkart"))
}

// Close disconnects the client at shutdown
func Close() {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = client.Disconnect(ctx)
}
