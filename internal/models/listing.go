package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing is a user-owned property listing kept in the listing store.
type Listing struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Description   string             `json:"description" bson:"description"`
	Address       string             `json:"address" bson:"address"`
	RegularPrice  float64            `json:"regularPrice" bson:"regularPrice"`
	DiscountPrice float64            `json:"discountPrice" bson:"discountPrice"`
	Bathrooms     int                `json:"bathrooms" bson:"bathrooms"`
	Bedrooms      int                `json:"bedrooms" bson:"bedrooms"`
	Furnished     bool               `json:"furnished" bson:"furnished"`
	Parking       bool               `json:"parking" bson:"parking"`
	Type          string             `json:"type" bson:"type"`
	Offer         bool               `json:"offer" bson:"offer"`
	ImageURLs     []string           `json:"imageUrls" bson:"imageUrls"`
	UserRef       string             `json:"userRef" bson:"userRef"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

const (
	ListingTypeSale = "sale"
	ListingTypeRent = "rent"
)

// ListingQuery holds the list filters. Nil booleans mean "either value".
type ListingQuery struct {
	Limit      int
	StartIndex int
	Offer      *bool
	Furnished  *bool
	Parking    *bool
	Type       string
	SearchTerm string
	Sort       string
	Order      string
}
