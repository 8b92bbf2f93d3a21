package transformers

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"hawaiielite-properties/internal/models"
)

func allNormalizers(t *testing.T) []PropertyNormalizer {
	t.Helper()
	addr := NewAddressTransformer()
	var out []PropertyNormalizer
	for _, src := range []models.Source{models.SourceZillow, models.SourceRedfinSold, models.SourceRedfinSale, models.SourceCanonical} {
		n, err := NewNormalizer(src, addr)
		if err != nil {
			t.Fatalf("NewNormalizer(%s): %v", src, err)
		}
		out = append(out, n)
	}
	return out
}

// reencode turns a Property back into the generic map shape an upstream decoder would produce.
func reencode(t *testing.T, p models.Property) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return raw
}

func TestNormalizeEmptyRecordUsesDefaults(t *testing.T) {
	for _, n := range allNormalizers(t) {
		t.Run(string(n.Source()), func(t *testing.T) {
			p := n.Normalize(map[string]interface{}{})

			if p.Address.State != "HI" {
				t.Errorf("state = %q, want HI", p.Address.State)
			}
			if len(p.Images) != 1 || p.Images[0] != models.PlaceholderImage {
				t.Errorf("images = %v, want placeholder", p.Images)
			}
			if p.Features == nil || len(p.Features) != 0 {
				t.Errorf("features = %#v, want empty slice", p.Features)
			}
			if p.Price != (models.Price{}) {
				t.Errorf("price = %+v, want zeros", p.Price)
			}
			if p.Location.Lat != nil || p.Location.Lng != nil {
				t.Errorf("location = %+v, want nils", p.Location)
			}
			if p.LastSold != nil {
				t.Errorf("lastSold = %v, want nil", *p.LastSold)
			}
			if p.Status == "" {
				t.Error("status is empty")
			}
		})
	}

	if p := mustNormalizer(t, models.SourceRedfinSold).Normalize(nil); p.Status != "SOLD" {
		t.Errorf("redfin sold default status = %q, want SOLD", p.Status)
	}
	if p := mustNormalizer(t, models.SourceZillow).Normalize(nil); p.Status != "FOR_SALE" {
		t.Errorf("zillow default status = %q, want FOR_SALE", p.Status)
	}
}

func mustNormalizer(t *testing.T, src models.Source) PropertyNormalizer {
	t.Helper()
	n, err := NewNormalizer(src, NewAddressTransformer())
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}
	return n
}

func TestNormalizeZillowSearchRecord(t *testing.T) {
	raw := map[string]interface{}{
		"zpid":          float64(6523411),
		"streetAddress": "123 Main St",
		"city":          "Kapolei",
		"state":         "HI",
		"zipcode":       "96707",
		"price":         float64(750000),
		"bedrooms":      float64(3),
		"bathrooms":     float64(2.5),
		"livingArea":    float64(1450),
		"propertyType":  "SINGLE_FAMILY",
		"hasImage":      true,
		"imgSrc":        "https://photos.example/1.jpg",
		"listingStatus": "FOR_SALE",
		"daysOnZillow":  float64(12),
		"latitude":      21.33,
		"longitude":     -158.08,
		"dateSold":      float64(1704067200000),
	}

	p := mustNormalizer(t, models.SourceZillow).Normalize(raw)

	if p.ID != "6523411" {
		t.Errorf("id = %q", p.ID)
	}
	if p.Address.Full != "123 Main St, Kapolei, HI 96707" {
		t.Errorf("full = %q", p.Address.Full)
	}
	if p.Price.Current != 750000 || p.Price.Original != 750000 || p.Price.Sold != 750000 {
		t.Errorf("price = %+v", p.Price)
	}
	if p.Details.Beds != 3 || p.Details.Baths != 2.5 || p.Details.Sqft != 1450 {
		t.Errorf("details = %+v", p.Details)
	}
	if !reflect.DeepEqual(p.Images, []string{"https://photos.example/1.jpg"}) {
		t.Errorf("images = %v", p.Images)
	}
	if p.DaysOnMarket != 12 {
		t.Errorf("daysOnMarket = %d", p.DaysOnMarket)
	}
	if p.Location.Lng == nil || *p.Location.Lng != -158.08 {
		t.Errorf("lng = %v", p.Location.Lng)
	}
	if p.LastSold == nil || *p.LastSold != "2024-01-01" {
		t.Errorf("lastSold = %v", p.LastSold)
	}
}

func TestNormalizeZillowHasImageFalse(t *testing.T) {
	raw := map[string]interface{}{"hasImage": false, "imgSrc": "https://photos.example/stale.jpg"}

	p := mustNormalizer(t, models.SourceZillow).Normalize(raw)
	if !reflect.DeepEqual(p.Images, []string{models.PlaceholderImage}) {
		t.Errorf("images = %v, want placeholder", p.Images)
	}
}

func TestNormalizeRedfinSoldRecord(t *testing.T) {
	raw := map[string]interface{}{
		"id":           "rf-1",
		"address":      "77 Kalakaua Ave",
		"city":         "Honolulu",
		"zipCode":      "96815",
		"price":        "$980,000",
		"soldPrice":    float64(1010000),
		"beds":         float64(2),
		"baths":        float64(2),
		"sqFt":         float64(1100),
		"yearBuilt":    float64(1978),
		"mainImageUrl": "https://photos.example/main.jpg",
		"features":     []interface{}{"Ocean view", "Lanai", "Ocean view"},
		"soldDate":     "2024-05-02",
	}

	p := mustNormalizer(t, models.SourceRedfinSold).Normalize(raw)

	if p.ID != "rf-1" || p.Address.Street != "77 Kalakaua Ave" || p.Address.State != "HI" {
		t.Errorf("identity = %q %q %q", p.ID, p.Address.Street, p.Address.State)
	}
	if p.Price.Current != 980000 || p.Price.Sold != 1010000 || p.Price.Original != 980000 {
		t.Errorf("price = %+v", p.Price)
	}
	if p.Details.YearBuilt != "1978" || p.Details.Sqft != 1100 {
		t.Errorf("details = %+v", p.Details)
	}
	if !reflect.DeepEqual(p.Features, []string{"Ocean view", "Lanai"}) {
		t.Errorf("features = %v", p.Features)
	}
	if !reflect.DeepEqual(p.Images, []string{"https://photos.example/main.jpg"}) {
		t.Errorf("images = %v", p.Images)
	}
	if p.Status != "SOLD" {
		t.Errorf("status = %q", p.Status)
	}
	if p.LastSold == nil || *p.LastSold != "2024-05-02" {
		t.Errorf("lastSold = %v", p.LastSold)
	}
}

func TestNormalizeSaleFeedSoldDefaultsToCurrent(t *testing.T) {
	p := mustNormalizer(t, models.SourceRedfinSale).Normalize(map[string]interface{}{"price": float64(500000)})
	if p.Price.Sold != 500000 {
		t.Errorf("sold = %v, want current price", p.Price.Sold)
	}
	if p.Status != "FOR_SALE" {
		t.Errorf("status = %q", p.Status)
	}
}

func TestNormalizeEmptyPhotosUsesPlaceholder(t *testing.T) {
	for _, n := range allNormalizers(t) {
		t.Run(string(n.Source()), func(t *testing.T) {
			p := n.Normalize(map[string]interface{}{"photos": []interface{}{}})
			if !reflect.DeepEqual(p.Images, []string{models.PlaceholderImage}) {
				t.Errorf("images = %v", p.Images)
			}
		})
	}
}

func TestNormalizeClampsNegativeNumbers(t *testing.T) {
	raw := map[string]interface{}{
		"price":        float64(-10),
		"beds":         float64(-1),
		"baths":        float64(-2),
		"sqft":         float64(-300),
		"daysOnMarket": float64(-4),
	}
	p := mustNormalizer(t, models.SourceRedfinSale).Normalize(raw)
	if p.Price.Current != 0 || p.Details.Beds != 0 || p.Details.Baths != 0 || p.Details.Sqft != 0 || p.DaysOnMarket != 0 {
		t.Errorf("negative values leaked: %+v %+v %d", p.Price, p.Details, p.DaysOnMarket)
	}
}

func TestNormalizeRejectsNonFiniteAndHugeNumbers(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
	}{
		{name: "nan price", raw: map[string]interface{}{"price": "NaN"}},
		{name: "infinite price", raw: map[string]interface{}{"price": "Infinity", "originalPrice": "-Inf"}},
		{name: "huge counts", raw: map[string]interface{}{"livingArea": 1e20, "bedrooms": 1e19, "daysOnZillow": 1e30, "dateSold": 1e30}},
	}

	n := mustNormalizer(t, models.SourceZillow)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := n.Normalize(tt.raw)
			if _, err := json.Marshal(p); err != nil {
				t.Fatalf("normalized property does not marshal: %v", err)
			}
			for _, v := range []float64{p.Price.Current, p.Price.Original, p.Price.Sold, p.Details.Baths} {
				if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("price/baths out of range: %+v %+v", p.Price, p.Details)
				}
			}
			if p.Details.Beds < 0 || p.Details.Sqft < 0 || p.DaysOnMarket < 0 {
				t.Errorf("counts out of range: beds=%d sqft=%d dom=%d", p.Details.Beds, p.Details.Sqft, p.DaysOnMarket)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []map[string]interface{}{
		{},
		{
			"zpid": float64(1), "streetAddress": "1 Pali Hwy", "city": "Kailua", "price": float64(1e6),
			"bedrooms": float64(4), "bathrooms": float64(3), "livingArea": float64(2000), "lotAreaValue": float64(5000),
			"imgSrc": "https://photos.example/a.jpg", "latitude": 21.4, "longitude": -157.7, "features": []interface{}{"Pool"},
			"dateSold": "2023-02-01", "daysOnZillow": float64(3), "originalPrice": float64(1.1e6),
		},
		{
			"propertyId": "rf-9", "address": "9 Hana Hwy", "photos": []interface{}{"https://photos.example/x.jpg", ""},
			"soldPrice": float64(650000), "description": "Quiet lot",
		},
		{"price": float64(100), "originalPrice": float64(-5), "soldPrice": float64(-1)},
		{"price": "NaN", "livingArea": 1e20, "bedrooms": 1e19, "daysOnZillow": 1e30},
	}

	for _, n := range allNormalizers(t) {
		for i, raw := range inputs {
			first := n.Normalize(raw)
			for _, again := range allNormalizers(t) {
				second := again.Normalize(reencode(t, first))
				if !reflect.DeepEqual(first, second) {
					t.Errorf("%s input %d re-fed through %s:\nfirst  %+v\nsecond %+v", n.Source(), i, again.Source(), first, second)
				}
			}
		}
	}
}

func TestNewNormalizerUnknownSource(t *testing.T) {
	if _, err := NewNormalizer("mls", NewAddressTransformer()); err == nil {
		t.Fatal("expected error for unknown source")
	}
}

func TestNormalizeDetail(t *testing.T) {
	raw := map[string]interface{}{
		"zpid":             float64(42),
		"homeType":         "CONDO",
		"homeStatus":       "FOR_SALE",
		"parkingSpaces":    float64(2),
		"taxAssessedValue": float64(400000),
		"schools":          []interface{}{map[string]interface{}{"name": "Kaimuki High"}},
	}

	d := NormalizeDetail(mustNormalizer(t, models.SourceZillow), raw)
	if d.ID != "42" || d.HomeType != "CONDO" || d.ParkingSpaces != 2 || d.TaxAssessedValue != 400000 {
		t.Errorf("detail = %+v", d)
	}
	if len(d.Schools) != 1 || d.Schools[0]["name"] != "Kaimuki High" {
		t.Errorf("schools = %v", d.Schools)
	}
	if d.NearbyHomes == nil {
		t.Error("nearbyHomes should default to an empty slice")
	}
}
