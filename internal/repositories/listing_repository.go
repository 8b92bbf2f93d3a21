package repositories

import (
	"context"
	"errors"
	"regexp"
	"time"

	apperrors "hawaiielite-properties/internal/errors"
	"hawaiielite-properties/internal/models"
	"hawaiielite-properties/pkg/database"
	"hawaiielite-properties/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type listingRepository struct {
	collection *mongo.Collection
}

// NewListingRepository returns a ListingRepository on the given collection.
// A nil collection falls back to the shared database.DB.
func NewListingRepository(collection *mongo.Collection) ListingRepository {
	if collection == nil {
		collection = database.DB.Collection(database.ListingsCollection)
	}
	return &listingRepository{collection: collection}
}

func observe(op string, start time.Time, err error) {
	metrics.MongoOperationDuration.WithLabelValues(op, database.ListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		metrics.MongoErrorsTotal.WithLabelValues(op, database.ListingsCollection).Inc()
	}
}

func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) error {
	now := time.Now().UTC()
	listing.ID = primitive.NewObjectID()
	listing.CreatedAt = now
	listing.UpdatedAt = now
	if listing.ImageURLs == nil {
		listing.ImageURLs = []string{}
	}

	start := time.Now()
	_, err := r.collection.InsertOne(ctx, listing)
	observe("insert", start, err)
	return err
}

func (r *listingRepository) FindByID(ctx context.Context, id string) (*models.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrListingNotFound
	}

	start := time.Now()
	var listing models.Listing
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&listing)
	observe("find_one", start, err)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) Update(ctx context.Context, id string, listing *models.Listing) (*models.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrListingNotFound
	}

	update := bson.M{
		"$set": bson.M{
			"name":          listing.Name,
			"description":   listing.Description,
			"address":       listing.Address,
			"regularPrice":  listing.RegularPrice,
			"discountPrice": listing.DiscountPrice,
			"bathrooms":     listing.Bathrooms,
			"bedrooms":      listing.Bedrooms,
			"furnished":     listing.Furnished,
			"parking":       listing.Parking,
			"type":          listing.Type,
			"offer":         listing.Offer,
			"imageUrls":     listing.ImageURLs,
			"updatedAt":     time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	start := time.Now()
	var updated models.Listing
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	observe("find_one_and_update", start, err)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *listingRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrListingNotFound
	}

	start := time.Now()
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	observe("delete_one", start, err)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrListingNotFound
	}
	return nil
}

func (r *listingRepository) Find(ctx context.Context, query models.ListingQuery) ([]models.Listing, error) {
	findOptions := options.Find().
		SetSort(listingSort(query)).
		SetSkip(int64(query.StartIndex)).
		SetLimit(int64(query.Limit))

	start := time.Now()
	cursor, err := r.collection.Find(ctx, listingFilter(query), findOptions)
	observe("find", start, err)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	listings := []models.Listing{}
	start = time.Now()
	err = cursor.All(ctx, &listings)
	observe("cursor_all", start, err)
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// listingFilter translates a ListingQuery into a Mongo filter. Unset or false
// booleans match either value; an empty or "all" type matches sale and rent.
func listingFilter(q models.ListingQuery) bson.M {
	either := bson.M{"$in": bson.A{false, true}}
	filter := bson.M{
		"name":      bson.M{"$regex": regexp.QuoteMeta(q.SearchTerm), "$options": "i"},
		"offer":     either,
		"furnished": either,
		"parking":   either,
		"type":      bson.M{"$in": bson.A{models.ListingTypeSale, models.ListingTypeRent}},
	}
	if q.Offer != nil && *q.Offer {
		filter["offer"] = true
	}
	if q.Furnished != nil && *q.Furnished {
		filter["furnished"] = true
	}
	if q.Parking != nil && *q.Parking {
		filter["parking"] = true
	}
	if q.Type != "" && q.Type != "all" {
		filter["type"] = q.Type
	}
	return filter
}

func listingSort(q models.ListingQuery) bson.D {
	direction := -1
	if q.Order == "asc" {
		direction = 1
	}
	field := q.Sort
	if field == "" {
		field = "createdAt"
	}
	return bson.D{{Key: field, Value: direction}}
}
