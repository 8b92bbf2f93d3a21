package models

// SearchFilters are the optional knobs of a server-side property search.
// Nil bounds are not forwarded upstream.
type SearchFilters struct {
	Status        string   `json:"status" form:"status"`
	PropertyType  string   `json:"propertyType" form:"propertyType"`
	Sort          string   `json:"sort" form:"sort"`
	Page          string   `json:"page" form:"page"`
	MinPrice      *float64 `json:"minPrice,omitempty" form:"minPrice"`
	MaxPrice      *float64 `json:"maxPrice,omitempty" form:"maxPrice"`
	MinBeds       *float64 `json:"minBeds,omitempty" form:"minBeds"`
	MaxBeds       *float64 `json:"maxBeds,omitempty" form:"maxBeds"`
	MinBaths      *float64 `json:"minBaths,omitempty" form:"minBaths"`
	MaxBaths      *float64 `json:"maxBaths,omitempty" form:"maxBaths"`
	MinSquareFeet *float64 `json:"minSquareFeet,omitempty" form:"minSquareFeet"`
	MaxSquareFeet *float64 `json:"maxSquareFeet,omitempty" form:"maxSquareFeet"`
}

// LocalFilters are applied after normalization to a fetched collection.
type LocalFilters struct {
	MinPrice     *float64 `json:"minPrice,omitempty" form:"minPrice"`
	MaxPrice     *float64 `json:"maxPrice,omitempty" form:"maxPrice"`
	MinBeds      *float64 `json:"minBeds,omitempty" form:"minBeds"`
	MinBaths     *float64 `json:"minBaths,omitempty" form:"minBaths"`
	PropertyType string   `json:"propertyType,omitempty" form:"propertyType"`
}

type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
}

type SearchResult struct {
	Properties   []Property `json:"properties"`
	TotalResults int        `json:"totalResults"`
	Pagination   Pagination `json:"pagination"`
}

// PropertyList is returned by the fetch-all feeds.
type PropertyList struct {
	Properties []Property `json:"properties"`
	Total      int        `json:"total"`
}

// ExportRequest selects what the export endpoint writes to disk.
type ExportRequest struct {
	Location string        `json:"location"`
	Filters  SearchFilters `json:"filters"`
}

type ExportResponse struct {
	Path    string `json:"path"`
	Records int    `json:"records"`
}
