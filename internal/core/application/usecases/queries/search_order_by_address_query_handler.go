package queries

import (
	"context"
	"fmt"

	"routebook/internal/core/ports"
)

// SearchOrderByAddressQueryHandler searches the active delivery by address.
type SearchOrderByAddressQueryHandler struct {
	repo ports.DeliveryRepository
}

func NewSearchOrderByAddressQueryHandler(repo ports.DeliveryRepository) SearchOrderByAddressQueryHandler {
	return SearchOrderByAddressQueryHandler{repo: repo}
}

// Handle runs the search. Only a missing active delivery is an error.
func (h SearchOrderByAddressQueryHandler) Handle(
	ctx context.Context,
	query SearchOrderByAddressQuery,
) (SearchOrderByAddressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchOrderByAddressQueryResponse{}, err
	}

	d, err := h.repo.Active(ctx)
	if err != nil {
		return SearchOrderByAddressQueryResponse{}, fmt.Errorf("search by address: %w", err)
	}

	o, found := d.SearchByAddress(query.Address())
	return SearchOrderByAddressQueryResponse{
		Order: o,
		Found: found,
	}, nil
}
