// Package route provides the Route value object: a named, caller-chosen
// sequence of order ids used to print a subset of a delivery in order.
package route

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"routebook/internal/pkg/errs"
	"routebook/internal/pkg/guard"
)

// DefaultName is used for routes created without a name.
const DefaultName = "No Route Name Given"

// OrderIDSeparator separates order ids in the textual route form
// "Order1, Order2".
const OrderIDSeparator = ", "

var (
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")
	ErrOrderIDsAreRequired   = errs.NewValueIsRequiredError("route order ids")
)

// Route is an ordered list of order ids with a display name. Ids may repeat;
// they are not checked against any delivery until a report is built.
type Route struct { //nolint:recvcheck //using for validation
	name     string
	orderIDs []string

	guard guard.ConstructorGuard
}

// NewRoute creates a route. A blank name becomes DefaultName; orderIDs must
// contain at least one id and no blank ids.
func NewRoute(name string, orderIDs []string) (Route, error) {
	r := Route{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(r.setName(name), r.setOrderIDs(orderIDs)); err != nil {
		return Route{}, err
	}

	return r, nil
}

// ParseOrderIDs splits the textual form "Order1, Order2" into ids.
func ParseOrderIDs(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrOrderIDsAreRequired
	}

	ids := strings.Split(strings.TrimSpace(raw), OrderIDSeparator)
	for i, id := range ids {
		ids[i] = strings.TrimSpace(id)
		if ids[i] == "" {
			return nil, errs.NewValueIsRequiredErrorWithCause(
				"route order id", fmt.Errorf("position %d of %q is blank", i+1, raw))
		}
	}

	return ids, nil
}

// Validate ensures the route was created through NewRoute.
func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// Name returns the display name of the route.
func (r Route) Name() string {
	return r.name
}

// OrderIDs returns the ids in route order. The slice is a copy.
func (r Route) OrderIDs() []string {
	return slices.Clone(r.orderIDs)
}

func (r *Route) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	r.name = name
	return nil
}

func (r *Route) setOrderIDs(orderIDs []string) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}
	for i, id := range orderIDs {
		if strings.TrimSpace(id) == "" {
			return errs.NewValueIsRequiredErrorWithCause(
				"route order id", fmt.Errorf("position %d is blank", i+1))
		}
	}
	r.orderIDs = slices.Clone(orderIDs)
	return nil
}
