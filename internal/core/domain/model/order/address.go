package order

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is the shipping destination of an order.
// All five components are required non-empty strings; inputs are trimmed
// at construction. Address is an immutable value object.
type Address struct { //nolint:recvcheck //using for validation
	street     string
	city       string
	state      string
	postalCode string
	country    string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated shipping address.
// Every component is required; whitespace-only input counts as missing.
func NewAddress(street, city, state, postalCode, country string) (Address, error) {
	address := Address{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
		address.setState(state),
		address.setPostalCode(postalCode),
		address.setCountry(country),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// State returns the state or region of the address.
func (a Address) State() string {
	return a.state
}

// PostalCode returns the postal code of the address.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country of the address.
func (a Address) Country() string {
	return a.country
}

// Validate ensures the Address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a *Address) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	state = strings.TrimSpace(state)
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	a.state = state
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	postalCode = strings.TrimSpace(postalCode)
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	a.postalCode = postalCode
	return nil
}

func (a *Address) setCountry(country string) error {
	country = strings.TrimSpace(country)
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	a.country = country
	return nil
}
