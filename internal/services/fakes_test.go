package services

import (
	"context"
	"net/url"
	"sort"
	"sync"
	"time"

	apperrors "hawaiielite-properties/internal/errors"
	"hawaiielite-properties/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeZillow struct {
	mu         sync.Mutex
	searchResp map[string]interface{}
	searchErr  error
	property   map[string]interface{}
	propErr    error
	images     []string
	imagesErr  error
	params     []url.Values
}

func (f *fakeZillow) Search(_ context.Context, params url.Values) (map[string]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params = append(f.params, params)
	return f.searchResp, f.searchErr
}

func (f *fakeZillow) Property(context.Context, string) (map[string]interface{}, error) {
	return f.property, f.propErr
}

func (f *fakeZillow) Images(context.Context, string) ([]string, error) {
	return f.images, f.imagesErr
}

func (f *fakeZillow) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.params)
}

type fakeRedfin struct {
	sold       []map[string]interface{}
	sale       []map[string]interface{}
	detail     map[string]interface{}
	err        error
	regionID   string
	soldWithin string
}

func (f *fakeRedfin) SearchSold(_ context.Context, regionID, soldWithin string) ([]map[string]interface{}, error) {
	f.regionID, f.soldWithin = regionID, soldWithin
	return f.sold, f.err
}

func (f *fakeRedfin) SearchSale(_ context.Context, regionID string) ([]map[string]interface{}, error) {
	f.regionID = regionID
	return f.sale, f.err
}

func (f *fakeRedfin) Detail(context.Context, string) (map[string]interface{}, error) {
	return f.detail, f.err
}

type memoryCache struct {
	mu    sync.Mutex
	items map[string]models.SearchResult
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string]models.SearchResult{}}
}

func (c *memoryCache) GetSearchResult(_ context.Context, key string) (*models.SearchResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r, ok := c.items[key]; ok {
		return &r, nil
	}
	return nil, nil
}

func (c *memoryCache) SetSearchResult(_ context.Context, key string, result *models.SearchResult, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = *result
	return nil
}

type memoryListings struct {
	mu       sync.Mutex
	listings map[string]models.Listing
	lastFind models.ListingQuery
}

func newMemoryListings() *memoryListings {
	return &memoryListings{listings: map[string]models.Listing{}}
}

func (r *memoryListings) Create(_ context.Context, l *models.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.ID = primitive.NewObjectID()
	l.CreatedAt = time.Now()
	r.listings[l.ID.Hex()] = *l
	return nil
}

func (r *memoryListings) FindByID(_ context.Context, id string) (*models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return nil, apperrors.ErrListingNotFound
	}
	return &l, nil
}

func (r *memoryListings) Update(_ context.Context, id string, l *models.Listing) (*models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.listings[id]
	if !ok {
		return nil, apperrors.ErrListingNotFound
	}
	updated := *l
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	r.listings[id] = updated
	return &updated, nil
}

func (r *memoryListings) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[id]; !ok {
		return apperrors.ErrListingNotFound
	}
	delete(r.listings, id)
	return nil
}

func (r *memoryListings) Find(_ context.Context, q models.ListingQuery) ([]models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFind = q
	out := []models.Listing{}
	for _, l := range r.listings {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
