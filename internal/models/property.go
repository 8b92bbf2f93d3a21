package models

// PlaceholderImage is used when an upstream record carries no image at all.
const PlaceholderImage = "https://via.placeholder.com/800x600.png?text=No+Image+Available"

// DefaultState is assumed for addresses that omit a state.
const DefaultState = "HI"

// Source tags the upstream feed a raw record came from.
type Source string

const (
	SourceZillow     Source = "zillow"
	SourceRedfinSold Source = "redfin-sold"
	SourceRedfinSale Source = "redfin-sale"
	SourceCanonical  Source = "canonical"
)

// Property is the canonical record every upstream source is normalized into.
type Property struct {
	ID           string   `json:"id"`
	Address      Address  `json:"address"`
	Price        Price    `json:"price"`
	Details      Details  `json:"details"`
	Images       []string `json:"images"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Location     Location `json:"location"`
	Status       string   `json:"status"`
	DaysOnMarket int      `json:"daysOnMarket"`
	LastSold     *string  `json:"lastSold"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
	Full    string `json:"full"`
}

type Price struct {
	Current  float64 `json:"current"`
	Original float64 `json:"original"`
	Sold     float64 `json:"sold"`
}

type Details struct {
	Beds         int     `json:"beds"`
	Baths        float64 `json:"baths"`
	Sqft         int     `json:"sqft"`
	LotSize      string  `json:"lotSize"`
	YearBuilt    string  `json:"yearBuilt"`
	PropertyType string  `json:"propertyType"`
}

// Location coordinates are nil when the upstream omits them.
type Location struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// PropertyDetail is the richer record served by the details endpoints.
type PropertyDetail struct {
	Property
	LotSize          string                   `json:"lotSize"`
	ParkingSpaces    int                      `json:"parkingSpaces"`
	HomeType         string                   `json:"homeType"`
	HomeStatus       string                   `json:"homeStatus"`
	TaxAssessedValue float64                  `json:"taxAssessedValue"`
	Zestimate        float64                  `json:"zestimate"`
	RentZestimate    float64                  `json:"rentZestimate"`
	Schools          []map[string]interface{} `json:"schools"`
	NearbyHomes      []map[string]interface{} `json:"nearbyHomes"`
}

type PropertyImages struct {
	Images      []string `json:"images"`
	TotalImages int      `json:"totalImages"`
}
