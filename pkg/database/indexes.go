package database

import (
	"context"
	"time"

	"hawaiielite-properties/pkg/logger"
	"hawaiielite-properties/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListingsCollection is the collection that stores user-owned listings.
const ListingsCollection = "listings"

// ListingIndexes backs the listing search: owner lookups, the default
// createdAt ordering and the boolean/type filters.
func ListingIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "userRef", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "offer", Value: 1}}},
		{Keys: bson.D{{Key: "regularPrice", Value: 1}}},
	}
}

// CreateListingIndexes creates the listing indexes. Existing indexes are left untouched.
func CreateListingIndexes(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection(ListingsCollection)

	start := time.Now()
	_, err := collection.Indexes().CreateMany(ctx, ListingIndexes())
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", ListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", ListingsCollection).Inc()
		logger.GlobalLogger.Errorf("Failed to create indexes collection=%s: %v", ListingsCollection, err)
		return err
	}

	logger.GlobalLogger.Println("MongoDB indexes created successfully.")
	return nil
}
