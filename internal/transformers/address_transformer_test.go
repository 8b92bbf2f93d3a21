package transformers

import "testing"

func TestSlug(t *testing.T) {
	tr := NewAddressTransformer()

	tests := []struct {
		name  string
		parts SlugParts
		want  string
	}{
		{
			name:  "full listing",
			parts: SlugParts{Street: "123 Main St", City: "Kapolei", State: "HI", Beds: 3, Baths: 2, Price: 750000},
			want:  "123-main-st-kapolei-hi-3-bed-2-bath-750000",
		},
		{
			name:  "all empty",
			parts: SlugParts{},
			want:  "",
		},
		{
			name:  "skips zero beds and baths",
			parts: SlugParts{Street: "45 Ala Moana Blvd", City: "Honolulu", State: "HI", Price: 1200000},
			want:  "45-ala-moana-blvd-honolulu-hi-1200000",
		},
		{
			name:  "strips punctuation and collapses separators",
			parts: SlugParts{Street: "  9 Kai St., Apt #4 ", City: "Kailua -- Kona", State: "HI"},
			want:  "9-kai-st-apt-4-kailua-kona-hi",
		},
		{
			name:  "folds diacritics",
			parts: SlugParts{Street: "1 Kāneʻohe Bay Dr", City: "Kāneʻohe", State: "HI"},
			want:  "1-kaneohe-bay-dr-kaneohe-hi",
		},
		{
			name:  "fractional baths lose the dot",
			parts: SlugParts{City: "Hilo", Baths: 2.5},
			want:  "hilo-25-bath",
		},
		{
			name:  "only unsafe characters",
			parts: SlugParts{Street: "!!!", City: "@@"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.Slug(tt.parts); got != tt.want {
				t.Errorf("Slug() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatAddress(t *testing.T) {
	tr := NewAddressTransformer()

	got := tr.FormatAddress("123 Main St", "Kapolei", "HI", "96707")
	if got.Full != "123 Main St, Kapolei, HI 96707" {
		t.Errorf("Full = %q", got.Full)
	}

	empty := tr.FormatAddress("", "", "", "")
	if empty.Full != ", ,  " {
		t.Errorf("Full for empty parts = %q", empty.Full)
	}
}

func TestParseAddressFields(t *testing.T) {
	tr := NewAddressTransformer()

	tests := []struct {
		name string
		raw  map[string]interface{}
		want string
	}{
		{
			name: "flat camel case",
			raw:  map[string]interface{}{"streetAddress": "1 Aloha Way", "city": "Hilo", "state": "HI", "zipCode": "96720"},
			want: "1 Aloha Way, Hilo, HI 96720",
		},
		{
			name: "nested address",
			raw: map[string]interface{}{"address": map[string]interface{}{
				"street": "2 Mauka Rd", "city": "Lahaina", "state": "HI", "zipcode": "96761",
			}},
			want: "2 Mauka Rd, Lahaina, HI 96761",
		},
		{
			name: "address as plain string",
			raw:  map[string]interface{}{"address": "3 Makai Pl", "city": "Lihue"},
			want: "3 Makai Pl, Lihue,  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.ParseAddressFields(tt.raw).Full; got != tt.want {
				t.Errorf("Full = %q, want %q", got, tt.want)
			}
		})
	}
}
