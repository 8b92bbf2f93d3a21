package transformers

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"hawaiielite-properties/internal/models"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugWhitespace  = regexp.MustCompile(`\s+`)
	slugUnsafeChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashRuns    = regexp.MustCompile(`-{2,}`)
)

// SlugParts are the fields a property slug is built from. Zero numbers are skipped.
type SlugParts struct {
	Street string
	City   string
	State  string
	Beds   int
	Baths  float64
	Price  float64
}

// SlugPartsFromProperty picks the slug inputs out of a normalized property.
func SlugPartsFromProperty(p models.Property) SlugParts {
	return SlugParts{
		Street: p.Address.Street,
		City:   p.Address.City,
		State:  p.Address.State,
		Beds:   p.Details.Beds,
		Baths:  p.Details.Baths,
		Price:  p.Price.Current,
	}
}

type addressTransformer struct{}

func NewAddressTransformer() AddressTransformer {
	return &addressTransformer{}
}

// FormatAddress builds "street, city, state zipcode". Missing parts stay empty.
func (t *addressTransformer) FormatAddress(street, city, state, zipcode string) models.Address {
	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	zipcode = strings.TrimSpace(zipcode)
	return models.Address{
		Street:  street,
		City:    city,
		State:   state,
		Zipcode: zipcode,
		Full:    fmt.Sprintf("%s, %s, %s %s", street, city, state, zipcode),
	}
}

func (t *addressTransformer) ParseAddressFields(raw map[string]interface{}) models.Address {
	return t.FormatAddress(
		firstString(raw, []string{"address.street", "address.streetAddress", "streetAddress", "street", "address"}),
		firstString(raw, []string{"address.city", "city"}),
		firstString(raw, []string{"address.state", "state"}),
		firstString(raw, []string{"address.zipcode", "address.zipCode", "zipcode", "zipCode"}),
	)
}

func (t *addressTransformer) Slug(parts SlugParts) string {
	segments := make([]string, 0, 6)
	for _, s := range []string{parts.Street, parts.City, parts.State} {
		if s = strings.TrimSpace(s); s != "" {
			segments = append(segments, s)
		}
	}
	if parts.Beds > 0 {
		segments = append(segments, fmt.Sprintf("%d-bed", parts.Beds))
	}
	if parts.Baths > 0 {
		segments = append(segments, formatNumber(parts.Baths)+"-bath")
	}
	if parts.Price > 0 {
		segments = append(segments, formatNumber(parts.Price))
	}

	slug := foldDiacritics(strings.ToLower(strings.Join(segments, "-")))
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugUnsafeChars.ReplaceAllString(slug, "")
	slug = slugDashRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// foldDiacritics turns "ā" into "a" so Hawaiian place names keep their letters.
func foldDiacritics(s string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(chain, s)
	if err != nil {
		return s
	}
	return folded
}
