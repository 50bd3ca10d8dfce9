package queries

import (
	"context"
	"fmt"

	"routebook/internal/core/domain/model/order"
	"routebook/internal/core/ports"
)

// GetOrderByIDQueryHandler resolves ids against the active delivery.
type GetOrderByIDQueryHandler struct {
	repo ports.DeliveryRepository
}

func NewGetOrderByIDQueryHandler(repo ports.DeliveryRepository) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{repo: repo}
}

// Handle returns the order, or an error matching errs.ErrObjectNotFound when
// the active delivery has no such id (or there is no active delivery).
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	d, err := h.repo.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	o, err := d.LookupByID(query.OrderID())
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return o, nil
}
