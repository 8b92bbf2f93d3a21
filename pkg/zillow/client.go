package zillow

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hawaiielite-properties/internal/models"
	"hawaiielite-properties/pkg/upstream"
)

const (
	DefaultStatus = "forSale"
	DefaultSort   = "price_desc"
	DefaultPage   = "1"
)

// statusMap accepts both the snake case values used by the site and the upstream's own names.
var statusMap = map[string]string{
	"for_sale":      "forSale",
	"for_rent":      "forRent",
	"recently_sold": "recentlySold",
	"forSale":       "forSale",
	"forRent":       "forRent",
	"recentlySold":  "recentlySold",
}

// Client wraps the Zillow RapidAPI endpoints.
type Client struct {
	api *upstream.Client
}

func NewClient(baseURL, host, apiKey string, timeout time.Duration) *Client {
	return &Client{
		api: upstream.NewRapidAPIClient("zillow", baseURL, host, apiKey, timeout),
	}
}

// Search calls /propertyExtendedSearch. The response must carry a props array.
func (c *Client) Search(ctx context.Context, params url.Values) (map[string]interface{}, error) {
	return c.api.GetObject(ctx, "/propertyExtendedSearch", params, upstream.Schema(upstream.SchemaZillowSearch))
}

func (c *Client) Property(ctx context.Context, zpid string) (map[string]interface{}, error) {
	return c.api.GetObject(ctx, "/property", url.Values{"zpid": {zpid}}, upstream.Schema(upstream.SchemaObject))
}

// Images returns the image URLs for a listing; an absent list yields an empty slice.
func (c *Client) Images(ctx context.Context, zpid string) ([]string, error) {
	obj, err := c.api.GetObject(ctx, "/images", url.Values{"zpid": {zpid}}, upstream.Schema(upstream.SchemaZillowImages))
	if err != nil {
		return nil, err
	}
	images := []string{}
	items, _ := obj["images"].([]interface{})
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if v != "" {
				images = append(images, v)
			}
		case map[string]interface{}:
			if u, ok := v["url"].(string); ok && u != "" {
				images = append(images, u)
			}
		}
	}
	return images, nil
}

// MapStatus converts a site status value to the upstream's; unknown values become forSale.
func MapStatus(status string) string {
	if mapped, ok := statusMap[status]; ok {
		return mapped
	}
	return DefaultStatus
}

// BuildSearchParams maps search filters onto the upstream query. Unset bounds
// and a propertyType of "all" are left out entirely.
func BuildSearchParams(location string, f models.SearchFilters) url.Values {
	params := url.Values{}
	params.Set("location", location)

	status := f.Status
	if status == "" {
		status = DefaultStatus
	}
	params.Set("status", MapStatus(status))

	if pt := strings.TrimSpace(f.PropertyType); pt != "" && !strings.EqualFold(pt, "all") {
		params.Set("propertyType", pt)
	}

	page := f.Page
	if page == "" {
		page = DefaultPage
	}
	params.Set("page", page)

	sort := f.Sort
	if sort == "" {
		sort = DefaultSort
	}
	params.Set("sort", sort)

	bounds := []struct {
		key   string
		value *float64
	}{
		{"minPrice", f.MinPrice},
		{"maxPrice", f.MaxPrice},
		{"minBeds", f.MinBeds},
		{"maxBeds", f.MaxBeds},
		{"minBaths", f.MinBaths},
		{"maxBaths", f.MaxBaths},
		{"minSquareFeet", f.MinSquareFeet},
		{"maxSquareFeet", f.MaxSquareFeet},
	}
	for _, b := range bounds {
		if b.value != nil {
			params.Set(b.key, formatBound(*b.value))
		}
	}
	return params
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
