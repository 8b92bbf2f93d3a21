package redfin

import (
	"context"
	"net/url"
	"time"

	"hawaiielite-properties/pkg/upstream"
)

const (
	DefaultRegionID   = "6_2446"
	DefaultSoldWithin = "30"
)

// Client wraps the Redfin RapidAPI endpoints.
type Client struct {
	api *upstream.Client
}

func NewClient(baseURL, host, apiKey string, timeout time.Duration) *Client {
	return &Client{
		api: upstream.NewRapidAPIClient("redfin", baseURL, host, apiKey, timeout),
	}
}

// SearchSold lists properties sold in regionID within the last soldWithin days.
func (c *Client) SearchSold(ctx context.Context, regionID, soldWithin string) ([]map[string]interface{}, error) {
	if regionID == "" {
		regionID = DefaultRegionID
	}
	if soldWithin == "" {
		soldWithin = DefaultSoldWithin
	}
	return c.search(ctx, "/properties/search-sold", url.Values{
		"regionId":   {regionID},
		"soldWithin": {soldWithin},
	})
}

// SearchSale lists active listings in regionID.
func (c *Client) SearchSale(ctx context.Context, regionID string) ([]map[string]interface{}, error) {
	if regionID == "" {
		regionID = DefaultRegionID
	}
	return c.search(ctx, "/properties/search-sale", url.Values{"regionId": {regionID}})
}

func (c *Client) Detail(ctx context.Context, propertyID string) (map[string]interface{}, error) {
	obj, err := c.api.GetObject(ctx, "/properties/detail", url.Values{"propertyId": {propertyID}}, upstream.Schema(upstream.SchemaObject))
	if err != nil {
		return nil, err
	}
	if data, ok := obj["data"].(map[string]interface{}); ok {
		return data, nil
	}
	return obj, nil
}

func (c *Client) search(ctx context.Context, path string, params url.Values) ([]map[string]interface{}, error) {
	obj, err := c.api.GetObject(ctx, path, params, upstream.Schema(upstream.SchemaRedfinSearch))
	if err != nil {
		return nil, err
	}
	items, _ := obj["properties"].([]interface{})
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if record, ok := item.(map[string]interface{}); ok {
			out = append(out, record)
		}
	}
	return out, nil
}
