package queries

import (
	"context"
	"fmt"

	"routebook/internal/core/domain/model/order"
	"routebook/internal/core/ports"
)

// ListOrdersQueryHandler lists the active delivery.
type ListOrdersQueryHandler struct {
	repo ports.DeliveryRepository
}

func NewListOrdersQueryHandler(repo ports.DeliveryRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{repo: repo}
}

// Handle returns the orders sorted lexicographically by id. An empty delivery
// yields an empty, non-nil slice.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	d, err := h.repo.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return d.SortedOrders(), nil
}
