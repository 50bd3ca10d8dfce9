package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"routebook/internal/pkg/errs"
	"routebook/internal/pkg/guard"
)

// AddressFieldSeparator separates the number, street and postal code of an
// address, both in manifest address lines and in console queries.
const AddressFieldSeparator = ", "

const addressFieldCount = 3

// ErrAddressIsNotConstructed is returned when an Address was not created via
// NewAddress or ParseAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress or ParseAddress constructors")

// Address is the delivery destination of an order: a house number, a street
// and a postal code. Street and postal code are stored lower-cased, so two
// addresses typed with different capitalisation compare equal.
//
// Address is an immutable value object. The zero value is invalid.
//
// Example:
//
//	addr, err := kernel.NewAddress(7, "Oak Ave", "B2B2B2")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(addr) // Output: [7, oak ave, b2b2b2]
type Address struct { //nolint:recvcheck //using for validation
	number     int
	street     string
	postalCode string
	guard      guard.ConstructorGuard
}

// NewAddress creates an Address from its three parts. Street and postal code
// are lower-cased and must not be blank.
//
// Parameters:
//   - number: The house number
//   - street: The street name, any case
//   - postalCode: The postal code, any case
//
// Returns:
//   - Address: A normalised address
//   - error: ValueIsRequiredError for a blank street or postal code
func NewAddress(number int, street string, postalCode string) (Address, error) {
	addr := Address{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(addr.setStreet(street), addr.setPostalCode(postalCode)); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// ParseAddress parses the textual form "<number>, <street>, <postal code>".
// The text is lower-cased before splitting on AddressFieldSeparator; it must
// produce exactly three fields and the first must be an integer.
//
// Manifest address lines use the same form wrapped in brackets; the caller
// strips the brackets before calling ParseAddress.
//
// Returns:
//   - Address: The parsed address
//   - error: ValueIsInvalidError when the text is malformed
//
// Example:
//
//	addr, err := kernel.ParseAddress("7, Oak Ave, B2B2B2")
//	// addr.Number() == 7, addr.Street() == "oak ave", addr.PostalCode() == "b2b2b2"
func ParseAddress(raw string) (Address, error) {
	fields := strings.Split(strings.ToLower(strings.TrimSpace(raw)), AddressFieldSeparator)
	if len(fields) != addressFieldCount {
		return Address{}, errs.NewValueIsInvalidErrorWithCause(
			"address",
			fmt.Errorf("%q has %d fields, want %d separated by %q",
				raw, len(fields), addressFieldCount, AddressFieldSeparator),
		)
	}

	number, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Address{}, errs.NewValueIsInvalidErrorWithCause(
			"address",
			fmt.Errorf("house number %q is not an integer", fields[0]),
		)
	}

	addr, err := NewAddress(number, fields[1], fields[2])
	if err != nil {
		return Address{}, errs.NewValueIsInvalidErrorWithCause("address", err)
	}

	return addr, nil
}

// Validate checks that the Address was built by a constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Number returns the house number.
func (a Address) Number() int {
	return a.number
}

// Street returns the lower-cased street.
func (a Address) Street() string {
	return a.street
}

// PostalCode returns the lower-cased postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Equals reports whether both addresses have the same number, street and
// postal code.
func (a Address) Equals(other Address) bool {
	return a.number == other.number &&
		a.street == other.street &&
		a.postalCode == other.postalCode
}

// String renders the address in its structured form, e.g. "[7, oak ave, b2b2b2]".
func (a Address) String() string {
	return fmt.Sprintf("[%d%s%s%s%s]",
		a.number, AddressFieldSeparator, a.street, AddressFieldSeparator, a.postalCode)
}

func (a *Address) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = strings.ToLower(street)
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	postalCode = strings.TrimSpace(postalCode)
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postal code")
	}
	a.postalCode = strings.ToLower(postalCode)
	return nil
}
