package transformers

import (
	"fmt"

	"hawaiielite-properties/internal/models"
)

// fieldKeys lists, per canonical field, the raw keys a source may use, in
// priority order. Every table starts with the canonical path so that a
// normalized Property re-fed as raw input maps onto itself.
type fieldKeys struct {
	id            []string
	street        []string
	city          []string
	state         []string
	zipcode       []string
	price         []string
	originalPrice []string
	soldPrice     []string
	beds          []string
	baths         []string
	sqft          []string
	lotSize       []string
	yearBuilt     []string
	propertyType  []string
	photos        []string
	singleImage   []string
	description   []string
	features      []string
	lat           []string
	lng           []string
	status        []string
	daysOnMarket  []string
	lastSold      []string
}

var zillowKeys = fieldKeys{
	id:            []string{"id", "zpid", "propertyId", "property_id"},
	street:        []string{"address.street", "address.streetAddress", "streetAddress", "street_address", "street", "address"},
	city:          []string{"address.city", "city"},
	state:         []string{"address.state", "state"},
	zipcode:       []string{"address.zipcode", "address.zipCode", "zipcode", "zipCode", "zip_code", "postalCode"},
	price:         []string{"price.current", "price", "unformattedPrice", "listPrice", "list_price"},
	originalPrice: []string{"price.original", "originalPrice", "original_price"},
	soldPrice:     []string{"price.sold", "soldPrice", "sold_price", "lastSoldPrice"},
	beds:          []string{"details.beds", "bedrooms", "beds"},
	baths:         []string{"details.baths", "bathrooms", "baths"},
	sqft:          []string{"details.sqft", "livingArea", "livingAreaValue", "squareFootage", "sqft", "sqFt"},
	lotSize:       []string{"details.lotSize", "lotAreaValue", "lotSize", "lot_size"},
	yearBuilt:     []string{"details.yearBuilt", "yearBuilt", "year_built"},
	propertyType:  []string{"details.propertyType", "propertyType", "homeType", "property_type"},
	photos:        []string{"images", "photos"},
	singleImage:   []string{"imgSrc", "mainImageUrl", "hiResImageLink"},
	description:   []string{"description"},
	features:      []string{"features"},
	lat:           []string{"location.lat", "latitude", "lat"},
	lng:           []string{"location.lng", "longitude", "lng"},
	status:        []string{"status", "listingStatus", "homeStatus"},
	daysOnMarket:  []string{"daysOnMarket", "daysOnZillow", "days_on_market"},
	lastSold:      []string{"lastSold", "dateSold", "lastSoldDate", "soldDate"},
}

var redfinKeys = fieldKeys{
	id:            []string{"id", "propertyId", "property_id", "listingId"},
	street:        []string{"address.street", "address.streetAddress", "streetAddress", "street_address", "address", "street"},
	city:          []string{"address.city", "city"},
	state:         []string{"address.state", "state"},
	zipcode:       []string{"address.zipcode", "address.zipCode", "zipCode", "zipcode", "zip_code", "postalCode"},
	price:         []string{"price.current", "price", "listPrice", "list_price"},
	originalPrice: []string{"price.original", "originalPrice", "original_price"},
	soldPrice:     []string{"price.sold", "soldPrice", "sold_price"},
	beds:          []string{"details.beds", "beds", "bedrooms"},
	baths:         []string{"details.baths", "baths", "bathrooms"},
	sqft:          []string{"details.sqft", "sqFt", "sqft", "squareFootage", "livingArea"},
	lotSize:       []string{"details.lotSize", "lotSize", "lot_size"},
	yearBuilt:     []string{"details.yearBuilt", "yearBuilt", "year_built"},
	propertyType:  []string{"details.propertyType", "propertyType", "property_type"},
	photos:        []string{"images", "photos"},
	singleImage:   []string{"mainImageUrl", "imgSrc"},
	description:   []string{"description", "remarks"},
	features:      []string{"features"},
	lat:           []string{"location.lat", "latitude", "lat"},
	lng:           []string{"location.lng", "longitude", "lng"},
	status:        []string{"status", "listingStatus", "mlsStatus"},
	daysOnMarket:  []string{"daysOnMarket", "dom", "days_on_market"},
	lastSold:      []string{"lastSold", "lastSoldDate", "soldDate", "sold_date"},
}

var canonicalKeys = fieldKeys{
	id:            []string{"id"},
	street:        []string{"address.street"},
	city:          []string{"address.city"},
	state:         []string{"address.state"},
	zipcode:       []string{"address.zipcode"},
	price:         []string{"price.current"},
	originalPrice: []string{"price.original"},
	soldPrice:     []string{"price.sold"},
	beds:          []string{"details.beds"},
	baths:         []string{"details.baths"},
	sqft:          []string{"details.sqft"},
	lotSize:       []string{"details.lotSize"},
	yearBuilt:     []string{"details.yearBuilt"},
	propertyType:  []string{"details.propertyType"},
	photos:        []string{"images"},
	description:   []string{"description"},
	features:      []string{"features"},
	lat:           []string{"location.lat"},
	lng:           []string{"location.lng"},
	status:        []string{"status"},
	daysOnMarket:  []string{"daysOnMarket"},
	lastSold:      []string{"lastSold"},
}

type propertyNormalizer struct {
	source        models.Source
	keys          fieldKeys
	defaultStatus string
	// Zillow marks image-less listings with hasImage=false while still sending a stale imgSrc.
	honorHasImage bool
	addrTrans     AddressTransformer
}

func NewZillowNormalizer(addrTrans AddressTransformer) PropertyNormalizer {
	return &propertyNormalizer{
		source:        models.SourceZillow,
		keys:          zillowKeys,
		defaultStatus: "FOR_SALE",
		honorHasImage: true,
		addrTrans:     addrTrans,
	}
}

func NewRedfinSoldNormalizer(addrTrans AddressTransformer) PropertyNormalizer {
	return &propertyNormalizer{
		source:        models.SourceRedfinSold,
		keys:          redfinKeys,
		defaultStatus: "SOLD",
		addrTrans:     addrTrans,
	}
}

func NewRedfinSaleNormalizer(addrTrans AddressTransformer) PropertyNormalizer {
	return &propertyNormalizer{
		source:        models.SourceRedfinSale,
		keys:          redfinKeys,
		defaultStatus: "FOR_SALE",
		addrTrans:     addrTrans,
	}
}

func NewCanonicalNormalizer(addrTrans AddressTransformer) PropertyNormalizer {
	return &propertyNormalizer{
		source:        models.SourceCanonical,
		keys:          canonicalKeys,
		defaultStatus: "FOR_SALE",
		addrTrans:     addrTrans,
	}
}

// NewNormalizer returns the normalizer registered for a source tag.
func NewNormalizer(source models.Source, addrTrans AddressTransformer) (PropertyNormalizer, error) {
	switch source {
	case models.SourceZillow:
		return NewZillowNormalizer(addrTrans), nil
	case models.SourceRedfinSold:
		return NewRedfinSoldNormalizer(addrTrans), nil
	case models.SourceRedfinSale:
		return NewRedfinSaleNormalizer(addrTrans), nil
	case models.SourceCanonical:
		return NewCanonicalNormalizer(addrTrans), nil
	}
	return nil, fmt.Errorf("no normalizer for source %q", source)
}

func (n *propertyNormalizer) Source() models.Source {
	return n.source
}

func (n *propertyNormalizer) Normalize(raw map[string]interface{}) models.Property {
	if raw == nil {
		raw = map[string]interface{}{}
	}
	k := n.keys

	state := firstString(raw, k.state)
	if state == "" {
		state = models.DefaultState
	}
	address := n.addrTrans.FormatAddress(
		firstString(raw, k.street),
		firstString(raw, k.city),
		state,
		firstString(raw, k.zipcode),
	)

	current, _ := firstNumber(raw, k.price)
	current = nonNegative(current)
	// A missing or non-positive original or sold price falls back to current.
	original := current
	if v, ok := firstNumber(raw, k.originalPrice); ok && v > 0 {
		original = v
	}
	sold := current
	if v, ok := firstNumber(raw, k.soldPrice); ok && v > 0 {
		sold = v
	}

	beds, _ := firstNumber(raw, k.beds)
	baths, _ := firstNumber(raw, k.baths)
	sqft, _ := firstNumber(raw, k.sqft)
	dom, _ := firstNumber(raw, k.daysOnMarket)

	status := firstString(raw, k.status)
	if status == "" {
		status = n.defaultStatus
	}

	return models.Property{
		ID:      firstString(raw, k.id),
		Address: address,
		Price: models.Price{
			Current:  current,
			Original: original,
			Sold:     sold,
		},
		Details: models.Details{
			Beds:         count(beds),
			Baths:        nonNegative(baths),
			Sqft:         count(sqft),
			LotSize:      firstString(raw, k.lotSize),
			YearBuilt:    firstString(raw, k.yearBuilt),
			PropertyType: firstString(raw, k.propertyType),
		},
		Images:       n.images(raw),
		Description:  firstString(raw, k.description),
		Features:     dedupe(firstStrings(raw, k.features)),
		Location:     models.Location{Lat: coordinate(raw, k.lat), Lng: coordinate(raw, k.lng)},
		Status:       status,
		DaysOnMarket: count(dom),
		LastSold:     firstDate(raw, k.lastSold),
	}
}

func (n *propertyNormalizer) images(raw map[string]interface{}) []string {
	if photos := firstStrings(raw, n.keys.photos); len(photos) > 0 {
		return photos
	}
	skipSingle := false
	if n.honorHasImage {
		if hasImage, ok := firstBool(raw, "hasImage"); ok && !hasImage {
			skipSingle = true
		}
	}
	if !skipSingle {
		if img := firstString(raw, n.keys.singleImage); img != "" {
			return []string{img}
		}
	}
	return []string{models.PlaceholderImage}
}

// coordinate treats 0 as missing, matching how the upstream feeds encode unknown positions.
func coordinate(raw map[string]interface{}, keys []string) *float64 {
	v, ok := firstNumber(raw, keys)
	if !ok {
		return nil
	}
	return &v
}

func dedupe(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
