package kernel

import (
	"strings"

	"amenade/internal/pkg/errs"
)

// ErrAddressIsNotConstructed indicates an Address was not created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"Address must be created via NewAddress",
)

// Address is a value object for the places a package travels between and a
// trip passes through: pickup, delivery, origin, and destination. City and
// country are required; street is optional since senders may only know the
// destination city when posting.
//
// Address is immutable and safe for concurrent use.
type Address struct {
	street  string
	city    string
	country string
}

// NewAddress creates a validated Address. Street may be empty.
func NewAddress(street, city, country string) (Address, error) {
	if strings.TrimSpace(city) == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	if strings.TrimSpace(country) == "" {
		return Address{}, errs.NewValueIsRequiredError("country")
	}

	return Address{
		street:  strings.TrimSpace(street),
		city:    strings.TrimSpace(city),
		country: strings.TrimSpace(country),
	}, nil
}

// Street returns the street line, possibly empty.
func (a Address) Street() string {
	return a.street
}

// City returns the city name.
func (a Address) City() string {
	return a.city
}

// Country returns the country name.
func (a Address) Country() string {
	return a.country
}

// IsEqual reports whether two addresses denote the same place.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street && a.city == other.city && a.country == other.country
}

// Validate returns ErrAddressIsNotConstructed for the zero value.
func (a Address) Validate() error {
	if a.city == "" || a.country == "" {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// String renders the address as a single display line, used in tracking
// event snapshots and notification messages.
func (a Address) String() string {
	if a.street == "" {
		return a.city + ", " + a.country
	}
	return a.street + ", " + a.city + ", " + a.country
}
