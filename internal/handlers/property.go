package handlers

import (
	"fmt"
	"net/http"
	"strings"

	apperrors "hawaiielite-properties/internal/errors"
	"hawaiielite-properties/internal/models"
	"hawaiielite-properties/internal/services"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	aggregation    *services.AggregationService
	exporter       *services.ExportService
	exportOnSearch bool
}

func NewPropertyHandler(aggregation *services.AggregationService, exporter *services.ExportService, exportOnSearch bool) *PropertyHandler {
	return &PropertyHandler{
		aggregation:    aggregation,
		exporter:       exporter,
		exportOnSearch: exportOnSearch,
	}
}

// bindError marks a request binding failure as invalid input.
func bindError(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
}

// SearchProperties godoc
// @Summary Search properties
// @Description Server-side filtered search of listings for a location
// @Tags Properties
// @Produce json
// @Param location query string true "City, neighborhood or ZIP"
// @Param status query string false "forSale, forRent or recentlySold" default(forSale)
// @Param propertyType query string false "Upstream property type, or all"
// @Param sort query string false "Sort order" default(price_desc)
// @Param page query string false "Page number" default(1)
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param minBeds query number false "Minimum bedrooms"
// @Param maxBeds query number false "Maximum bedrooms"
// @Param minBaths query number false "Minimum bathrooms"
// @Param maxBaths query number false "Maximum bathrooms"
// @Param minSquareFeet query number false "Minimum living area"
// @Param maxSquareFeet query number false "Maximum living area"
// @Success 200 {object} models.SearchResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /properties/search [get]
func (h *PropertyHandler) SearchProperties(c *gin.Context) {
	var filters models.SearchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	result, err := h.aggregation.SearchProperties(c.Request.Context(), strings.TrimSpace(c.Query("location")), filters)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if h.exportOnSearch && h.exporter != nil {
		if _, err := h.exporter.ExportPropertiesToCSV(result.Properties); err != nil {
			_ = c.Error(err)
			return
		}
	}
	c.JSON(http.StatusOK, result)
}

// GetPropertyDetails godoc
// @Summary Get property details
// @Description Property record joined with its full image gallery
// @Tags Properties
// @Produce json
// @Param id path string true "Zillow property id (zpid)"
// @Success 200 {object} models.PropertyDetail
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetPropertyDetails(c *gin.Context) {
	detail, err := h.aggregation.GetPropertyDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetPropertyImages godoc
// @Summary Get property images
// @Tags Properties
// @Produce json
// @Param id path string true "Zillow property id (zpid)"
// @Success 200 {object} models.PropertyImages
// @Failure 404 {object} ErrorResponse
// @Router /properties/{id}/images [get]
func (h *PropertyHandler) GetPropertyImages(c *gin.Context) {
	images, err := h.aggregation.GetPropertyImages(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// GetSoldProperties godoc
// @Summary Recently sold properties
// @Description Redfin sold feed with client-side filters and sorting
// @Tags Properties
// @Produce json
// @Param regionId query string false "Redfin region id" default(6_2446)
// @Param soldWithin query string false "Days since sale" default(30)
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param minBeds query number false "Minimum bedrooms"
// @Param minBaths query number false "Minimum bathrooms"
// @Param propertyType query string false "Property type, or all"
// @Param sort query string false "price_asc, price_desc, bedrooms_asc, ..."
// @Success 200 {object} models.PropertyList
// @Failure 400 {object} ErrorResponse
// @Router /properties/sold [get]
func (h *PropertyHandler) GetSoldProperties(c *gin.Context) {
	var filters models.LocalFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	props, err := h.aggregation.FetchSoldProperties(c.Request.Context(), c.Query("regionId"), c.Query("soldWithin"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.respondList(c, props, filters)
}

// GetPropertiesForSale godoc
// @Summary Properties for sale
// @Description Redfin for-sale feed with client-side filters and sorting
// @Tags Properties
// @Produce json
// @Param regionId query string false "Redfin region id" default(6_2446)
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param minBeds query number false "Minimum bedrooms"
// @Param minBaths query number false "Minimum bathrooms"
// @Param propertyType query string false "Property type, or all"
// @Param sort query string false "price_asc, price_desc, bedrooms_asc, ..."
// @Success 200 {object} models.PropertyList
// @Failure 400 {object} ErrorResponse
// @Router /properties/for-sale [get]
func (h *PropertyHandler) GetPropertiesForSale(c *gin.Context) {
	var filters models.LocalFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	props, err := h.aggregation.FetchPropertiesForSale(c.Request.Context(), c.Query("regionId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.respondList(c, props, filters)
}

func (h *PropertyHandler) respondList(c *gin.Context, props []models.Property, filters models.LocalFilters) {
	out, err := h.aggregation.FilterAndSort(props, filters, c.Query("sort"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.PropertyList{Properties: out, Total: len(out)})
}

// GetRedfinPropertyDetails godoc
// @Summary Redfin property details
// @Tags Properties
// @Produce json
// @Param id path string true "Redfin property id"
// @Success 200 {object} models.PropertyDetail
// @Failure 404 {object} ErrorResponse
// @Router /properties/redfin/{id} [get]
func (h *PropertyHandler) GetRedfinPropertyDetails(c *gin.Context) {
	detail, err := h.aggregation.GetRedfinPropertyDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ExportProperties godoc
// @Summary Export a search to CSV
// @Description Runs a search and overwrites the server-side CSV export with its results
// @Tags Properties
// @Accept json
// @Produce json
// @Param request body models.ExportRequest true "Search to export"
// @Success 200 {object} models.ExportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /properties/export [post]
func (h *PropertyHandler) ExportProperties(c *gin.Context) {
	var req models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	result, err := h.aggregation.SearchProperties(c.Request.Context(), strings.TrimSpace(req.Location), req.Filters)
	if err != nil {
		_ = c.Error(err)
		return
	}

	n, err := h.exporter.ExportPropertiesToCSV(result.Properties)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.ExportResponse{Path: h.exporter.Path(), Records: n})
}
