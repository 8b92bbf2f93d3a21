package validators

import (
	"errors"
	"regexp"

	"hawaiielite-properties/internal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var errBoundsOrder = errors.New("must not be greater than the matching max value")

type propertyValidator struct{}

func NewPropertyValidator() PropertyValidator {
	return &propertyValidator{}
}

// boundsOrdered rejects a min bound larger than its max. Either side may be unset.
func boundsOrdered(max *float64) validation.Rule {
	return validation.By(func(value interface{}) error {
		min, _ := value.(*float64)
		if min == nil || max == nil {
			return nil
		}
		if *min > *max {
			return errBoundsOrder
		}
		return nil
	})
}

func (v *propertyValidator) ValidateSearch(location string, f models.SearchFilters) error {
	errs := validation.Errors{
		"location": validation.Validate(location, validation.Required, validation.Length(2, 200)),
	}
	if err := validation.ValidateStruct(&f,
		validation.Field(&f.Page, is.Digit),
		validation.Field(&f.MinPrice, validation.Min(0.0), boundsOrdered(f.MaxPrice)),
		validation.Field(&f.MaxPrice, validation.Min(0.0)),
		validation.Field(&f.MinBeds, validation.Min(0.0), boundsOrdered(f.MaxBeds)),
		validation.Field(&f.MaxBeds, validation.Min(0.0)),
		validation.Field(&f.MinBaths, validation.Min(0.0), boundsOrdered(f.MaxBaths)),
		validation.Field(&f.MaxBaths, validation.Min(0.0)),
		validation.Field(&f.MinSquareFeet, validation.Min(0.0), boundsOrdered(f.MaxSquareFeet)),
		validation.Field(&f.MaxSquareFeet, validation.Min(0.0)),
	); err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			for k, e := range fieldErrs {
				errs[k] = e
			}
		} else {
			return err
		}
	}
	return errs.Filter()
}

var regionIDPattern = regexp.MustCompile(`^\d+_\d+$`)

func (v *propertyValidator) ValidateLocalFilters(f models.LocalFilters) error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.MinPrice, validation.Min(0.0), boundsOrdered(f.MaxPrice)),
		validation.Field(&f.MaxPrice, validation.Min(0.0)),
		validation.Field(&f.MinBeds, validation.Min(0.0)),
		validation.Field(&f.MinBaths, validation.Min(0.0)),
	)
}

// ValidateRegion checks the shape of a Redfin region id such as "6_2446". Empty is allowed.
func ValidateRegion(regionID string) error {
	return validation.Errors{
		"regionId": validation.Validate(regionID, validation.Match(regionIDPattern)),
	}.Filter()
}
