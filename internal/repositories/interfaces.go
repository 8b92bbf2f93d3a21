package repositories

import (
	"context"
	"time"

	"hawaiielite-properties/internal/models"
)

// ListingRepository persists user-owned listings.
type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	FindByID(ctx context.Context, id string) (*models.Listing, error)
	Update(ctx context.Context, id string, listing *models.Listing) (*models.Listing, error)
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, query models.ListingQuery) ([]models.Listing, error)
}

// SearchCache stores aggregated search results. Get returns nil, nil on a miss.
type SearchCache interface {
	GetSearchResult(ctx context.Context, key string) (*models.SearchResult, error)
	SetSearchResult(ctx context.Context, key string, result *models.SearchResult, expiration time.Duration) error
}
