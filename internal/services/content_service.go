package services

import (
	"context"
	"fmt"

	apperrors "hawaiielite-properties/internal/errors"
	"hawaiielite-properties/internal/models"

	"golang.org/x/sync/errgroup"
)

const DefaultRecentPosts = 3

// ContentSource is the WordPress client surface used by ContentService.
type ContentSource interface {
	Posts(ctx context.Context, q models.PostQuery) ([]models.Post, error)
	Pages(ctx context.Context) ([]models.Post, error)
	PostsBySlug(ctx context.Context, slug string) ([]models.Post, error)
	PagesBySlug(ctx context.Context, slug string) ([]models.Post, error)
	Categories(ctx context.Context) ([]models.Term, error)
}

// AllContent is the combined posts and pages payload.
type AllContent struct {
	Posts []models.Post `json:"posts"`
	Pages []models.Post `json:"pages"`
}

type ContentService struct {
	source ContentSource
}

func NewContentService(source ContentSource) *ContentService {
	return &ContentService{source: source}
}

func (s *ContentService) GetPosts(ctx context.Context, q models.PostQuery) ([]models.Post, error) {
	return s.source.Posts(ctx, q)
}

func (s *ContentService) GetRecentPosts(ctx context.Context, n int) ([]models.Post, error) {
	if n <= 0 {
		n = DefaultRecentPosts
	}
	return s.source.Posts(ctx, models.PostQuery{PerPage: n})
}

func (s *ContentService) GetPages(ctx context.Context) ([]models.Post, error) {
	return s.source.Pages(ctx)
}

func (s *ContentService) GetCategories(ctx context.Context) ([]models.Term, error) {
	return s.source.Categories(ctx)
}

// GetContentBySlug looks the slug up among posts first, then pages.
func (s *ContentService) GetContentBySlug(ctx context.Context, slug string) (*models.Post, error) {
	posts, err := s.source.PostsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if len(posts) > 0 {
		return &posts[0], nil
	}

	pages, err := s.source.PagesBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if len(pages) > 0 {
		return &pages[0], nil
	}
	return nil, fmt.Errorf("%w: slug %q", apperrors.ErrContentNotFound, slug)
}

// GetAllContent fetches posts and pages concurrently.
func (s *ContentService) GetAllContent(ctx context.Context) (*AllContent, error) {
	var all AllContent
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all.Posts, err = s.source.Posts(gctx, models.PostQuery{})
		return err
	})
	g.Go(func() error {
		var err error
		all.Pages, err = s.source.Pages(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &all, nil
}
