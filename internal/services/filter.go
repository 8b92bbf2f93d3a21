package services

import (
	"sort"
	"strings"

	"hawaiielite-properties/internal/models"
)

var propertyTypeNames = map[string]string{
	"SINGLE_FAMILY": "House",
	"MULTI_FAMILY":  "Multi-Family",
	"TOWNHOUSE":     "Townhouse",
	"CONDO":         "Condo",
	"APARTMENT":     "Apartment",
	"MOBILE":        "Mobile Home",
	"LAND":          "Land",
}

// MapPropertyType turns an upstream property type code into its display name.
func MapPropertyType(t string) string {
	if name, ok := propertyTypeNames[t]; ok {
		return name
	}
	return "Other"
}

// FilterProperties drops every property that fails an active predicate.
// A propertyType of "" or "all" matches everything.
func FilterProperties(props []models.Property, f models.LocalFilters) []models.Property {
	wantType := strings.TrimSpace(f.PropertyType)
	if strings.EqualFold(wantType, "all") {
		wantType = ""
	}

	out := make([]models.Property, 0, len(props))
	for _, p := range props {
		if f.MinPrice != nil && p.Price.Current < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price.Current > *f.MaxPrice {
			continue
		}
		if f.MinBeds != nil && float64(p.Details.Beds) < *f.MinBeds {
			continue
		}
		if f.MinBaths != nil && p.Details.Baths < *f.MinBaths {
			continue
		}
		if wantType != "" && !strings.EqualFold(p.Details.PropertyType, wantType) {
			continue
		}
		out = append(out, p)
	}
	return out
}

var sortKeys = map[string]struct {
	value func(models.Property) float64
	desc  bool
}{
	"price_asc":       {func(p models.Property) float64 { return p.Price.Current }, false},
	"price_desc":      {func(p models.Property) float64 { return p.Price.Current }, true},
	"bedrooms_asc":    {func(p models.Property) float64 { return float64(p.Details.Beds) }, false},
	"bedrooms_desc":   {func(p models.Property) float64 { return float64(p.Details.Beds) }, true},
	"bathrooms_asc":   {func(p models.Property) float64 { return p.Details.Baths }, false},
	"bathrooms_desc":  {func(p models.Property) float64 { return p.Details.Baths }, true},
	"squareFeet_asc":  {func(p models.Property) float64 { return float64(p.Details.Sqft) }, false},
	"squareFeet_desc": {func(p models.Property) float64 { return float64(p.Details.Sqft) }, true},
}

// SortProperties returns a stably sorted copy. Unknown keys keep the input order.
func SortProperties(props []models.Property, key string) []models.Property {
	out := make([]models.Property, len(props))
	copy(out, props)

	k, ok := sortKeys[key]
	if !ok {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if k.desc {
			return k.value(out[i]) > k.value(out[j])
		}
		return k.value(out[i]) < k.value(out[j])
	})
	return out
}

// applyTypeMap rewrites each property type through MapPropertyType.
func applyTypeMap(props []models.Property) []models.Property {
	for i := range props {
		props[i].Details.PropertyType = MapPropertyType(props[i].Details.PropertyType)
	}
	return props
}
