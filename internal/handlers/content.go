package handlers

import (
	"net/http"
	"strconv"

	"hawaiielite-properties/internal/models"
	"hawaiielite-properties/internal/services"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	content *services.ContentService
}

func NewContentHandler(content *services.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// GetPosts godoc
// @Summary List blog posts
// @Tags Content
// @Produce json
// @Param per_page query int false "Posts per page"
// @Param page query int false "Page number"
// @Param categories query string false "Comma separated category ids"
// @Param search query string false "Full-text search"
// @Success 200 {array} models.Post
// @Failure 503 {object} ErrorResponse
// @Router /content/posts [get]
func (h *ContentHandler) GetPosts(c *gin.Context) {
	var q models.PostQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	posts, err := h.content.GetPosts(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetRecentPosts godoc
// @Summary Most recent blog posts
// @Tags Content
// @Produce json
// @Param limit query int false "Number of posts" default(3)
// @Success 200 {array} models.Post
// @Router /content/posts/recent [get]
func (h *ContentHandler) GetRecentPosts(c *gin.Context) {
	limit := services.DefaultRecentPosts
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			_ = c.Error(bindError(err))
			return
		}
		limit = n
	}
	posts, err := h.content.GetRecentPosts(c.Request.Context(), limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPages godoc
// @Summary List pages
// @Tags Content
// @Produce json
// @Success 200 {array} models.Post
// @Router /content/pages [get]
func (h *ContentHandler) GetPages(c *gin.Context) {
	pages, err := h.content.GetPages(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, pages)
}

// GetCategories godoc
// @Summary List post categories
// @Tags Content
// @Produce json
// @Success 200 {array} models.Term
// @Router /content/categories [get]
func (h *ContentHandler) GetCategories(c *gin.Context) {
	terms, err := h.content.GetCategories(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, terms)
}

// GetAllContent godoc
// @Summary Posts and pages together
// @Tags Content
// @Produce json
// @Success 200 {object} services.AllContent
// @Router /content/all [get]
func (h *ContentHandler) GetAllContent(c *gin.Context) {
	all, err := h.content.GetAllContent(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, all)
}

// GetContentBySlug godoc
// @Summary Post or page by slug
// @Description Posts are searched first, then pages
// @Tags Content
// @Produce json
// @Param slug path string true "Content slug"
// @Success 200 {object} models.Post
// @Failure 404 {object} ErrorResponse
// @Router /content/{slug} [get]
func (h *ContentHandler) GetContentBySlug(c *gin.Context) {
	post, err := h.content.GetContentBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, post)
}
