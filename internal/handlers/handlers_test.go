package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	apperrors "hawaiielite-properties/internal/errors"
	"hawaiielite-properties/internal/middleware"
	"hawaiielite-properties/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, status, w.Body.String())
	}
	var resp ErrorResponse
	decode(t, w, &resp)
	if resp.Error.Code != code {
		t.Errorf("error code = %q, want %q", resp.Error.Code, code)
	}
	if resp.Error.Message == "" {
		t.Error("error message is empty")
	}
}

// memoryListings is an in-memory ListingRepository.
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
	l.UpdatedAt = l.CreatedAt
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
	updated.UpdatedAt = time.Now()
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
	var out []models.Listing
	for _, l := range r.listings {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
