package services

import (
	"context"
	"fmt"

	apperrors "hawaiielite-properties/internal/errors"
	"hawaiielite-properties/internal/models"
	"hawaiielite-properties/internal/repositories"
	"hawaiielite-properties/internal/validators"
	"hawaiielite-properties/pkg/logger"
)

const (
	DefaultListingLimit = 9
	DefaultListingSort  = "createdAt"
	DefaultListingOrder = "desc"
)

type ListingService struct {
	repo      repositories.ListingRepository
	validator validators.ListingValidator
}

func NewListingService(repo repositories.ListingRepository, validator validators.ListingValidator) *ListingService {
	return &ListingService{repo: repo, validator: validator}
}

// Create stores a new listing owned by userID.
func (s *ListingService) Create(ctx context.Context, userID string, listing *models.Listing) (*models.Listing, error) {
	listing.UserRef = userID
	if err := s.validator.ValidateListing(listing); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, err
	}
	logger.GlobalLogger.Printf("listing created id=%s user=%s", listing.ID.Hex(), userID)
	return listing, nil
}

func (s *ListingService) Get(ctx context.Context, id string) (*models.Listing, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces the editable fields of a listing owned by userID.
func (s *ListingService) Update(ctx context.Context, id, userID string, changes *models.Listing) (*models.Listing, error) {
	if err := s.authorize(ctx, id, userID); err != nil {
		return nil, err
	}
	changes.UserRef = userID
	if err := s.validator.ValidateListing(changes); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, changes)
}

func (s *ListingService) Delete(ctx context.Context, id, userID string) error {
	if err := s.authorize(ctx, id, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.GlobalLogger.Printf("listing deleted id=%s user=%s", id, userID)
	return nil
}

// List applies the listing defaults and runs the query.
func (s *ListingService) List(ctx context.Context, q models.ListingQuery) ([]models.Listing, error) {
	if err := s.validator.ValidateQuery(q); err != nil {
		return nil, err
	}
	if q.Limit <= 0 {
		q.Limit = DefaultListingLimit
	}
	if q.StartIndex < 0 {
		q.StartIndex = 0
	}
	if q.Sort == "" {
		q.Sort = DefaultListingSort
	}
	if q.Order == "" {
		q.Order = DefaultListingOrder
	}
	return s.repo.Find(ctx, q)
}

func (s *ListingService) authorize(ctx context.Context, id, userID string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserRef != userID {
		return fmt.Errorf("%w: listing %s", apperrors.ErrForbidden, id)
	}
	return nil
}
