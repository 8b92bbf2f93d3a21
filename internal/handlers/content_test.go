package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "hawaiielite-properties/internal/errors"
	"hawaiielite-properties/internal/models"
	"hawaiielite-properties/internal/services"
	"hawaiielite-properties/pkg/wordpress"

	"github.com/gin-gonic/gin"
)

const (
	wpPosts = `[
		{"id": 11, "type": "post", "slug": "buying-in-kailua", "title": {"rendered": "Buying in Kailua"},
		 "_embedded": {"wp:featuredmedia": [{"source_url": "https://example.com/kailua.jpg"}],
		               "wp:term": [[{"id": 3, "name": "Guides", "slug": "guides"}]]}},
		{"id": 12, "type": "post", "slug": "market-update", "title": {"rendered": "Market update"}}
	]`
	wpPages      = `[{"id": 21, "type": "page", "slug": "about", "title": {"rendered": "About"}}]`
	wpCategories = `[{"id": 3, "name": "Guides", "slug": "guides", "count": 4}]`
)

// newWordPressServer answers like the WordPress REST API. It records the
// per_page value of the last posts request.
func newWordPressServer(t *testing.T, perPage *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		slug := r.URL.Query().Get("slug")
		switch r.URL.Path {
		case "/posts":
			if perPage != nil {
				*perPage = r.URL.Query().Get("per_page")
			}
			switch slug {
			case "":
				_, _ = w.Write([]byte(wpPosts))
			case "market-update":
				_, _ = w.Write([]byte(`[{"id": 12, "type": "post", "slug": "market-update", "title": {"rendered": "Market update"}}]`))
			default:
				_, _ = w.Write([]byte(`[]`))
			}
		case "/pages":
			if slug == "" || slug == "about" {
				_, _ = w.Write([]byte(wpPages))
				return
			}
			_, _ = w.Write([]byte(`[]`))
		case "/categories":
			_, _ = w.Write([]byte(wpCategories))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"code":"rest_no_route","message":"No route was found"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newContentRouter(t *testing.T, baseURL string) *gin.Engine {
	t.Helper()
	h := NewContentHandler(services.NewContentService(wordpress.NewClient(baseURL, 2*time.Second)))

	r := newRouter()
	content := r.Group("/api/content")
	content.GET("/posts", h.GetPosts)
	content.GET("/posts/recent", h.GetRecentPosts)
	content.GET("/pages", h.GetPages)
	content.GET("/categories", h.GetCategories)
	content.GET("/all", h.GetAllContent)
	content.GET("/:slug", h.GetContentBySlug)
	return r
}

func TestGetPosts(t *testing.T) {
	srv := newWordPressServer(t, nil)
	r := newContentRouter(t, srv.URL)

	w := doRequest(t, r, http.MethodGet, "/api/content/posts", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var posts []models.Post
	decode(t, w, &posts)
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	if posts[0].FeaturedImage == nil || *posts[0].FeaturedImage != "https://example.com/kailua.jpg" {
		t.Errorf("featured image = %v", posts[0].FeaturedImage)
	}
	if len(posts[0].Categories) != 1 || posts[0].Categories[0].Slug != "guides" {
		t.Errorf("categories = %+v", posts[0].Categories)
	}
	if posts[1].FeaturedImage != nil {
		t.Errorf("post without media has featured image %q", *posts[1].FeaturedImage)
	}
}

func TestGetRecentPosts(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		wantPerPage string
		wantStatus  int
	}{
		{name: "default", path: "/api/content/posts/recent", wantPerPage: "3", wantStatus: http.StatusOK},
		{name: "explicit", path: "/api/content/posts/recent?limit=5", wantPerPage: "5", wantStatus: http.StatusOK},
		{name: "not a number", path: "/api/content/posts/recent?limit=five", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var perPage string
			srv := newWordPressServer(t, &perPage)
			r := newContentRouter(t, srv.URL)

			w := doRequest(t, r, http.MethodGet, tt.path, nil, nil)
			if tt.wantStatus != http.StatusOK {
				assertError(t, w, tt.wantStatus, apperrors.ErrCodeInvalidParameters)
				return
			}
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
			}
			if perPage != tt.wantPerPage {
				t.Errorf("per_page = %q, want %q", perPage, tt.wantPerPage)
			}
		})
	}
}

func TestGetContentBySlug(t *testing.T) {
	srv := newWordPressServer(t, nil)
	r := newContentRouter(t, srv.URL)

	tests := []struct {
		slug     string
		wantType string
	}{
		{slug: "market-update", wantType: "post"},
		{slug: "about", wantType: "page"},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			w := doRequest(t, r, http.MethodGet, "/api/content/"+tt.slug, nil, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
			}
			var post models.Post
			decode(t, w, &post)
			if post.Slug != tt.slug || post.Type != tt.wantType {
				t.Errorf("got %s %q, want %s %q", post.Type, post.Slug, tt.wantType, tt.slug)
			}
		})
	}

	w := doRequest(t, r, http.MethodGet, "/api/content/nowhere", nil, nil)
	assertError(t, w, http.StatusNotFound, apperrors.ErrCodeContentNotFound)
}

func TestGetAllContentAndCategories(t *testing.T) {
	srv := newWordPressServer(t, nil)
	r := newContentRouter(t, srv.URL)

	w := doRequest(t, r, http.MethodGet, "/api/content/all", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var all services.AllContent
	decode(t, w, &all)
	if len(all.Posts) != 2 || len(all.Pages) != 1 {
		t.Errorf("all content = %d posts, %d pages", len(all.Posts), len(all.Pages))
	}

	w = doRequest(t, r, http.MethodGet, "/api/content/categories", nil, nil)
	var terms []models.Term
	decode(t, w, &terms)
	if len(terms) != 1 || terms[0].Count != 4 {
		t.Errorf("categories = %+v", terms)
	}
}

func TestContentUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"database error"}`))
	}))
	defer srv.Close()
	r := newContentRouter(t, srv.URL)

	w := doRequest(t, r, http.MethodGet, "/api/content/pages", nil, nil)
	assertError(t, w, http.StatusBadGateway, apperrors.ErrCodeUpstreamError)
}
