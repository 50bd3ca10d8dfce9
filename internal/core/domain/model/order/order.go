package order

import (
	"errors"
	"fmt"
	"strings"

	"routebook/internal/core/domain/model/kernel"
	"routebook/internal/pkg/errs"
)

// NoNote is what Note returns for an order that was given no note.
const NoNote = "N/A"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDIsRequired is returned when an order id is empty or blank.
	ErrOrderIDIsRequired = errs.NewValueIsRequiredError("order id")
)

// Order is one delivery stop: who receives it, how to reach them and where
// it goes. It is the record produced for every block of a manifest.
//
// Order follows these invariants:
//   - The id is non-empty; uniqueness is enforced by the owning Delivery
//   - The address is a constructed kernel.Address (lower-cased)
//   - The note is optional; absence is explicit, not an empty string
//   - Can only be created through NewOrder and is immutable afterwards
type Order struct {
	// id is the order id, the key of the order within its delivery
	id string

	// name is the customer name
	name string

	// phone is free-form text, conventionally (###)-###-####
	phone string

	// address is the delivery destination
	address kernel.Address

	// note holds delivery instructions when hasNote is set
	note    string
	hasNote bool

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// Option configures optional fields of an Order during NewOrder.
type Option func(*Order)

// WithNote attaches a delivery note to the order.
func WithNote(note string) Option {
	return func(o *Order) {
		o.note = note
		o.hasNote = true
	}
}

// NewOrder creates an Order from its mandatory fields. The note is the only
// optional field and is supplied with WithNote.
//
// Parameters:
//   - id: Order id, must not be blank
//   - name: Customer name
//   - phone: Contact phone, not validated
//   - address: Delivery address, must be constructed
//   - opts: Optional fields (WithNote)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Joined validation errors otherwise
//
// Example:
//
//	addr, _ := kernel.NewAddress(12, "Main St", "A1A1A1")
//	o, err := order.NewOrder("Order1", "Jane Doe", "(555)-123-4567", addr,
//	    order.WithNote("Leave at back door"))
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id, name, phone string, address kernel.Address, opts ...Option) (*Order, error) {
	o := &Order{
		name:          name,
		phone:         phone,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(o)
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// ID returns the order id.
func (o *Order) ID() string {
	return o.id
}

// Name returns the customer name.
func (o *Order) Name() string {
	return o.name
}

// Phone returns the contact phone as written in the manifest.
func (o *Order) Phone() string {
	return o.phone
}

// Address returns the delivery address.
func (o *Order) Address() kernel.Address {
	return o.address
}

// Note returns the delivery note, or NoNote when the order has none.
func (o *Order) Note() string {
	if !o.hasNote {
		return NoNote
	}
	return o.note
}

// HasNote reports whether a note was supplied.
func (o *Order) HasNote() bool {
	return o.hasNote
}

// String renders the order as one line:
//
//	Order1, Jane Doe, (555)-123-4567, [12, main st, a1a1a1], Leave at back door
func (o *Order) String() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s", o.id, o.name, o.phone, o.address, o.Note())
}

func (o *Order) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrOrderIDIsRequired
	}
	o.id = id
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}
