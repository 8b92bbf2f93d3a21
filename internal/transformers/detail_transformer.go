package transformers

import (
	"hawaiielite-properties/internal/models"
)

// NormalizeDetail normalizes a details payload and carries over the
// detail-only fields the list endpoints do not expose.
func NormalizeDetail(n PropertyNormalizer, raw map[string]interface{}) models.PropertyDetail {
	if raw == nil {
		raw = map[string]interface{}{}
	}
	property := n.Normalize(raw)

	parking, _ := firstNumber(raw, []string{"parkingSpaces", "resoFacts.parkingCapacity", "parking_spaces"})
	tax, _ := firstNumber(raw, []string{"taxAssessedValue", "tax_assessed_value"})
	zestimate, _ := firstNumber(raw, []string{"zestimate"})
	rentZestimate, _ := firstNumber(raw, []string{"rentZestimate"})

	return models.PropertyDetail{
		Property:         property,
		LotSize:          firstString(raw, []string{"lotSize", "lotAreaValue", "details.lotSize"}),
		ParkingSpaces:    count(parking),
		HomeType:         firstString(raw, []string{"homeType", "propertyType"}),
		HomeStatus:       firstString(raw, []string{"homeStatus", "listingStatus", "status"}),
		TaxAssessedValue: nonNegative(tax),
		Zestimate:        nonNegative(zestimate),
		RentZestimate:    nonNegative(rentZestimate),
		Schools:          firstMaps(raw, "schools"),
		NearbyHomes:      firstMaps(raw, "nearbyHomes"),
	}
}
