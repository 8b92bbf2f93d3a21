package transformers

import (
	"hawaiielite-properties/internal/models"
)

// PropertyNormalizer maps one upstream source's raw record into the canonical Property.
// Implementations are pure and never fail: absent fields take their defaults.
type PropertyNormalizer interface {
	Source() models.Source
	Normalize(raw map[string]interface{}) models.Property
}

type AddressTransformer interface {
	FormatAddress(street, city, state, zipcode string) models.Address
	ParseAddressFields(raw map[string]interface{}) models.Address
	Slug(parts SlugParts) string
}
