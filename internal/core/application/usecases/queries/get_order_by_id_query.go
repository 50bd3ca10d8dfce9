package queries

import (
	"errors"
	"strings"

	"routebook/internal/core/domain/model/order"
	"routebook/internal/pkg/guard"
)

var (
	ErrGetOrderByIDQueryIsNotConstructed = errors.New(
		"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
	)
)

// GetOrderByIDQuery looks an order up by its exact id.
//
// Example:
//
//	query, err := NewGetOrderByIDQuery("Order1")
//	if err != nil {
//	    return err
//	}
//
//	o, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    fmt.Println("Can not find order")
//	}
type GetOrderByIDQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates the query. Surrounding whitespace is trimmed;
// a blank id fails with order.ErrOrderIDIsRequired.
func NewGetOrderByIDQuery(orderID string) (GetOrderByIDQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return GetOrderByIDQuery{}, order.ErrOrderIDIsRequired
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the id to look up.
func (q GetOrderByIDQuery) OrderID() string {
	return q.orderID
}
