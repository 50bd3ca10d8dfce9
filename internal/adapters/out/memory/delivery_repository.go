// Package memory keeps the active delivery for the lifetime of a session.
package memory

import (
	"context"

	"routebook/internal/core/domain/model/delivery"
	"routebook/internal/core/ports"
	"routebook/internal/pkg/errs"
)

// DeliveryRepository implements ports.DeliveryRepository with a single slot.
// It is not safe for concurrent use.
type DeliveryRepository struct {
	active *delivery.Delivery
}

var _ ports.DeliveryRepository = (*DeliveryRepository)(nil)

// NewDeliveryRepository creates an empty repository.
func NewDeliveryRepository() *DeliveryRepository {
	return &DeliveryRepository{}
}

// Replace makes d the active delivery, dropping the previous one.
func (r *DeliveryRepository) Replace(ctx context.Context, d *delivery.Delivery) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	r.active = d
	return nil
}

// Active returns the active delivery.
func (r *DeliveryRepository) Active(ctx context.Context) (*delivery.Delivery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.active == nil {
		return nil, errs.NewObjectNotFoundError("delivery", "active")
	}

	return r.active, nil
}
