package queries

import (
	"errors"

	"routebook/internal/core/domain/model/kernel"
	"routebook/internal/core/domain/model/order"
	"routebook/internal/pkg/guard"
)

var (
	ErrSearchOrderByAddressQueryIsNotConstructed = errors.New(
		"SearchOrderByAddressQuery must be created via NewSearchOrderByAddressQuery constructor",
	)
)

// SearchOrderByAddressQuery finds the first order, in manifest order, whose
// address equals the query address. Matching is case-insensitive because
// both sides are lower-cased.
type SearchOrderByAddressQuery struct {
	address kernel.Address

	guard guard.ConstructorGuard
}

// NewSearchOrderByAddressQuery parses raw in the form "7, Oak Ave, B2B2B2".
// Malformed input fails with an error matching errs.ErrValueIsInvalid.
func NewSearchOrderByAddressQuery(raw string) (SearchOrderByAddressQuery, error) {
	address, err := kernel.ParseAddress(raw)
	if err != nil {
		return SearchOrderByAddressQuery{}, err
	}

	return SearchOrderByAddressQuery{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchOrderByAddressQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrderByAddressQueryIsNotConstructed)
}

// Address returns the normalised address to search for.
func (q SearchOrderByAddressQuery) Address() kernel.Address {
	return q.address
}

// SearchOrderByAddressQueryResponse carries the match. Found is false, and
// Order nil, when no order has the address; that is not an error.
type SearchOrderByAddressQueryResponse struct {
	Order *order.Order
	Found bool
}
