package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hawaiielite-properties/pkg/config"
	"hawaiielite-properties/pkg/logger"
	"hawaiielite-properties/pkg/metrics"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var MongoClient *mongo.Client
var DB *mongo.Database

var ErrNotConnected = errors.New("mongodb client is not connected")

// InitDB connects to MongoDB, selects the configured database and ensures the
// listing indexes exist.
func InitDB(cfg config.DatabaseConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.URI).
		SetConnectTimeout(10 * time.Second).
		SetMaxPoolSize(50)

	start := time.Now()
	client, err := mongo.Connect(ctx, clientOptions)
	metrics.MongoOperationDuration.WithLabelValues("connect", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("connect", "").Inc()
		logger.GlobalLogger.Errorf("failed to connect to MongoDB: %v", err)
		return fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	if err := ping(ctx, client); err != nil {
		_ = client.Disconnect(ctx)
		logger.GlobalLogger.Errorf("failed to ping MongoDB: %v", err)
		return fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	MongoClient = client
	DB = client.Database(cfg.DBName)

	if err := CreateListingIndexes(ctx, DB); err != nil {
		return err
	}

	logger.GlobalLogger.Printf("MongoDB connected db=%s", cfg.DBName)
	return nil
}

// Ping checks the shared client.
func Ping(ctx context.Context) error {
	if MongoClient == nil {
		return ErrNotConnected
	}
	return ping(ctx, MongoClient)
}

func ping(ctx context.Context, client *mongo.Client) error {
	start := time.Now()
	err := client.Ping(ctx, readpref.Primary())
	metrics.MongoOperationDuration.WithLabelValues("ping", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("ping", "").Inc()
	}
	return err
}

// CloseDB disconnects the shared client.
func CloseDB() {
	if MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		start := time.Now()
		err := MongoClient.Disconnect(ctx)
		metrics.MongoOperationDuration.WithLabelValues("disconnect", "").Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.MongoErrorsTotal.WithLabelValues("disconnect", "").Inc()
			logger.GlobalLogger.Errorf("Error closing MongoDB: %v", err)
		} else {
			logger.GlobalLogger.Println("MongoDB connection closed")
		}
		MongoClient = nil
		DB = nil
	}
}
