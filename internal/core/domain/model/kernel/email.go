package kernel

import (
	"net/mail"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrEmailIsNotConstructed is returned when attempting to use an improperly
// initialized Email. Emails must be created using the NewEmail constructor.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError(
	"email must be created via NewEmail constructor")

// Email represents a normalized email address.
// Email is an immutable value object: the raw input is trimmed and lowercased
// once at construction, so two Email values built from "a@x.com" and
// " A@X.COM " compare equal. It serves as the case-insensitive unique key for
// customers and subscribers.
//
// The zero value of Email is invalid and will fail validation - use NewEmail
// to create instances.
//
// Example:
//
//	email, err := kernel.NewEmail(" Jane.Doe@Example.COM ")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(email) // Output: jane.doe@example.com
type Email struct { //nolint:recvcheck //using for validation
	address string
	guard   guard.ConstructorGuard
}

// NewEmail creates an Email from a raw address string.
// The input is trimmed and lowercased before validation, and must parse as an
// RFC 5322 address. Returns a ValueIsRequiredError for empty input and a
// ValueIsInvalidError for malformed addresses.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	if _, err := mail.ParseAddress(normalized); err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	return Email{
		address: normalized,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// String returns the normalized address.
func (e Email) String() string {
	return e.address
}

// IsEqual compares two emails by their normalized address.
func (e Email) IsEqual(other Email) bool {
	return e.address == other.address
}

// Validate ensures the Email was created via NewEmail.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}
