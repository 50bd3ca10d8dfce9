package delivery

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"routebook/internal/core/domain/model/kernel"
	"routebook/internal/core/domain/model/order"
	"routebook/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not created via NewDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrDuplicateOrderID is returned when two orders of one delivery share an id.
	ErrDuplicateOrderID = errors.New("duplicate order id")
)

// Delivery is the set of orders read from one manifest.
//
// Delivery follows these invariants:
//   - Every key of orders equals the id of the order stored under it
//   - sequence holds the same orders in manifest order
//   - Can only be created through NewDelivery and is never mutated afterwards
type Delivery struct {
	// id distinguishes this load of the manifest from any other
	id kernel.UUID

	// source is the manifest the orders were read from
	source string

	// orders indexes orders by id
	orders map[string]*order.Order

	// sequence keeps manifest order so that scans are deterministic
	sequence []*order.Order

	isConstructed bool
}

// NewDelivery builds a Delivery from orders given in manifest order.
//
// Parameters:
//   - source: Where the orders came from (typically the manifest path)
//   - orders: The parsed orders; each must be constructed and ids must be unique
//
// Returns:
//   - *Delivery: The delivery, with a freshly generated ID
//   - error: The order validation error, or ErrDuplicateOrderID wrapped with the id
//
// Example:
//
//	d, err := delivery.NewDelivery("today.txt", order1, order2)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(d.Count()) // 2
func NewDelivery(source string, orders ...*order.Order) (*Delivery, error) {
	d := &Delivery{
		id:            kernel.NewUUID(),
		source:        source,
		orders:        make(map[string]*order.Order, len(orders)),
		sequence:      make([]*order.Order, 0, len(orders)),
		isConstructed: true,
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if _, exists := d.orders[o.ID()]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateOrderID, o.ID())
		}
		d.orders[o.ID()] = o
		d.sequence = append(d.sequence, o)
	}

	return d, nil
}

// Validate ensures the Delivery was created through NewDelivery and carries
// a load id.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return d.id.Validate()
}

// ID returns the identifier of this manifest load.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Source returns where the orders were read from.
func (d *Delivery) Source() string {
	return d.source
}

// Count returns the number of orders in the delivery.
func (d *Delivery) Count() int {
	return len(d.orders)
}

// LookupByID returns the order with exactly the given id.
//
// Returns:
//   - *order.Order: The matching order
//   - error: *errs.ObjectNotFoundError when no order has that id
func (d *Delivery) LookupByID(id string) (*order.Order, error) {
	o, ok := d.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}

// SearchByAddress scans the orders in manifest order and returns the first
// one delivered to addr. The boolean is false when no order matches; that is
// an ordinary outcome, not an error.
//
// Addresses are normalised by kernel.Address, so the comparison is
// case-insensitive on street and postal code.
func (d *Delivery) SearchByAddress(addr kernel.Address) (*order.Order, bool) {
	for _, o := range d.sequence {
		if o.Address().Equals(addr) {
			return o, true
		}
	}
	return nil, false
}

// Orders returns the orders in manifest order. The slice is a copy.
func (d *Delivery) Orders() []*order.Order {
	return slices.Clone(d.sequence)
}

// SortedOrders returns the orders sorted by id, as listings print them.
func (d *Delivery) SortedOrders() []*order.Order {
	sorted := slices.Clone(d.sequence)
	slices.SortFunc(sorted, func(a, b *order.Order) int {
		return strings.Compare(a.ID(), b.ID())
	})
	return sorted
}
