package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"hawaiielite-properties/internal/middleware"
	"hawaiielite-properties/internal/models"
	"hawaiielite-properties/internal/services"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	listings *services.ListingService
}

func NewListingHandler(listings *services.ListingService) *ListingHandler {
	return &ListingHandler{listings: listings}
}

// CreateListing godoc
// @Summary Create a listing
// @Description The listing is owned by the authenticated user
// @Tags Listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listing body models.Listing true "Listing"
// @Success 201 {object} models.Listing
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /listings [post]
func (h *ListingHandler) CreateListing(c *gin.Context) {
	var listing models.Listing
	if err := c.ShouldBindJSON(&listing); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	created, err := h.listings.Create(c.Request.Context(), middleware.UserID(c), &listing)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetListing godoc
// @Summary Get a listing
// @Tags Listings
// @Produce json
// @Param id path string true "Listing id"
// @Success 200 {object} models.Listing
// @Failure 404 {object} ErrorResponse
// @Router /listings/{id} [get]
func (h *ListingHandler) GetListing(c *gin.Context) {
	listing, err := h.listings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// UpdateListing godoc
// @Summary Update a listing
// @Tags Listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing id"
// @Param listing body models.Listing true "Listing"
// @Success 200 {object} models.Listing
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /listings/{id} [put]
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	var listing models.Listing
	if err := c.ShouldBindJSON(&listing); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	updated, err := h.listings.Update(c.Request.Context(), c.Param("id"), middleware.UserID(c), &listing)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteListing godoc
// @Summary Delete a listing
// @Tags Listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing id"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /listings/{id} [delete]
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	if err := h.listings.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Listing has been deleted!"})
}

// GetListings godoc
// @Summary Search listings
// @Tags Listings
// @Produce json
// @Param limit query int false "Page size" default(9)
// @Param startIndex query int false "Offset" default(0)
// @Param offer query bool false "Only listings with an offer"
// @Param furnished query bool false "Only furnished listings"
// @Param parking query bool false "Only listings with parking"
// @Param type query string false "sale, rent or all" default(all)
// @Param searchTerm query string false "Case-insensitive name match"
// @Param sort query string false "Sort field" default(createdAt)
// @Param order query string false "asc or desc" default(desc)
// @Success 200 {array} models.Listing
// @Failure 400 {object} ErrorResponse
// @Router /listings [get]
func (h *ListingHandler) GetListings(c *gin.Context) {
	q, err := parseListingQuery(c)
	if err != nil {
		_ = c.Error(bindError(err))
		return
	}
	listings, err := h.listings.List(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	c.JSON(http.StatusOK, listings)
}

func parseListingQuery(c *gin.Context) (models.ListingQuery, error) {
	q := models.ListingQuery{
		Type:       c.Query("type"),
		SearchTerm: c.Query("searchTerm"),
		Sort:       c.Query("sort"),
		Order:      c.Query("order"),
		Offer:      onlyTrue(c.Query("offer")),
		Furnished:  onlyTrue(c.Query("furnished")),
		Parking:    onlyTrue(c.Query("parking")),
	}

	var err error
	if q.Limit, err = optionalInt(c.Query("limit")); err != nil {
		return q, fmt.Errorf("limit: %w", err)
	}
	if q.StartIndex, err = optionalInt(c.Query("startIndex")); err != nil {
		return q, fmt.Errorf("startIndex: %w", err)
	}
	return q, nil
}

// onlyTrue narrows a flag to true when the value is "true"; anything else
// leaves the flag unconstrained.
func onlyTrue(raw string) *bool {
	if raw != "true" {
		return nil
	}
	v := true
	return &v
}

func optionalInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
