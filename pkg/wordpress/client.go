package wordpress

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"hawaiielite-properties/internal/models"
	"hawaiielite-properties/pkg/upstream"
)

// Client reads posts, pages and categories from the WordPress REST API.
type Client struct {
	api *upstream.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		api: upstream.NewClient("wordpress", baseURL, timeout, nil),
	}
}

type rendered struct {
	Rendered string `json:"rendered"`
}

type rawContent struct {
	ID       int      `json:"id"`
	Type     string   `json:"type"`
	Slug     string   `json:"slug"`
	Link     string   `json:"link"`
	Date     string   `json:"date"`
	Title    rendered `json:"title"`
	Excerpt  rendered `json:"excerpt"`
	Content  rendered `json:"content"`
	Embedded struct {
		FeaturedMedia []struct {
			SourceURL string `json:"source_url"`
		} `json:"wp:featuredmedia"`
		Terms [][]models.Term `json:"wp:term"`
	} `json:"_embedded"`
}

func (r rawContent) toPost() models.Post {
	post := models.Post{
		ID:         r.ID,
		Type:       r.Type,
		Slug:       r.Slug,
		Link:       r.Link,
		Date:       r.Date,
		Title:      r.Title.Rendered,
		Excerpt:    r.Excerpt.Rendered,
		Content:    r.Content.Rendered,
		Categories: []models.Term{},
	}
	if len(r.Embedded.FeaturedMedia) > 0 && r.Embedded.FeaturedMedia[0].SourceURL != "" {
		src := r.Embedded.FeaturedMedia[0].SourceURL
		post.FeaturedImage = &src
	}
	if len(r.Embedded.Terms) > 0 && r.Embedded.Terms[0] != nil {
		post.Categories = r.Embedded.Terms[0]
	}
	return post
}

// Posts lists posts with embedded media and terms.
func (c *Client) Posts(ctx context.Context, q models.PostQuery) ([]models.Post, error) {
	params := url.Values{}
	if q.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Categories != "" {
		params.Set("categories", q.Categories)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	return c.content(ctx, "/posts", params)
}

func (c *Client) Pages(ctx context.Context) ([]models.Post, error) {
	return c.content(ctx, "/pages", url.Values{})
}

// PostsBySlug and PagesBySlug return at most one item in practice; WordPress answers with a list.
func (c *Client) PostsBySlug(ctx context.Context, slug string) ([]models.Post, error) {
	return c.content(ctx, "/posts", url.Values{"slug": {slug}})
}

func (c *Client) PagesBySlug(ctx context.Context, slug string) ([]models.Post, error) {
	return c.content(ctx, "/pages", url.Values{"slug": {slug}})
}

func (c *Client) Categories(ctx context.Context) ([]models.Term, error) {
	terms := []models.Term{}
	if err := c.api.GetInto(ctx, "/categories", url.Values{"_embed": {"1"}}, upstream.Schema(upstream.SchemaWordPressList), &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

func (c *Client) content(ctx context.Context, path string, params url.Values) ([]models.Post, error) {
	params.Set("_embed", "1")

	var raw []rawContent
	if err := c.api.GetInto(ctx, path, params, upstream.Schema(upstream.SchemaWordPressList), &raw); err != nil {
		return nil, err
	}
	posts := make([]models.Post, 0, len(raw))
	for _, r := range raw {
		posts = append(posts, r.toPost())
	}
	return posts, nil
}
