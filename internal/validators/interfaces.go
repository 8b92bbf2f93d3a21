package validators

import (
	"hawaiielite-properties/internal/models"
)

type PropertyValidator interface {
	ValidateSearch(location string, filters models.SearchFilters) error
	ValidateLocalFilters(filters models.LocalFilters) error
}

type ListingValidator interface {
	ValidateListing(listing *models.Listing) error
	ValidateQuery(query models.ListingQuery) error
}
