package validators

import (
	"hawaiielite-properties/internal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ListingSortFields are the listing fields a client may sort on.
var ListingSortFields = []interface{}{"createdAt", "updatedAt", "regularPrice", "discountPrice", "bedrooms", "bathrooms", "name"}

type listingValidator struct{}

func NewListingValidator() ListingValidator {
	return &listingValidator{}
}

func (v *listingValidator) ValidateListing(l *models.Listing) error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Name, validation.Required, validation.Length(3, 120)),
		validation.Field(&l.Description, validation.Required, validation.Length(1, 5000)),
		validation.Field(&l.Address, validation.Required, validation.Length(3, 300)),
		validation.Field(&l.Type, validation.Required, validation.In(models.ListingTypeSale, models.ListingTypeRent)),
		validation.Field(&l.RegularPrice, validation.Required, validation.Min(0.0)),
		validation.Field(&l.DiscountPrice,
			validation.Min(0.0),
			validation.When(l.Offer, validation.Required, validation.Max(l.RegularPrice).Exclusive()),
		),
		validation.Field(&l.Bedrooms, validation.Min(0)),
		validation.Field(&l.Bathrooms, validation.Min(0)),
		validation.Field(&l.ImageURLs, validation.Length(0, 6), validation.Each(is.URL)),
	)
}

func (v *listingValidator) ValidateQuery(q models.ListingQuery) error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Limit, validation.Min(0), validation.Max(100)),
		validation.Field(&q.StartIndex, validation.Min(0)),
		validation.Field(&q.Type, validation.In("all", models.ListingTypeSale, models.ListingTypeRent)),
		validation.Field(&q.Sort, validation.In(ListingSortFields...)),
		validation.Field(&q.Order, validation.In("asc", "desc")),
	)
}
