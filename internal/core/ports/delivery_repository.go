package ports

import (
	"context"

	"routebook/internal/core/domain/model/delivery"
)

// DeliveryRepository holds the delivery the session is working with.
// There is at most one active delivery; confirming a new one replaces it
// wholesale and never mutates the previous value.
type DeliveryRepository interface {
	// Replace makes d the active delivery.
	Replace(ctx context.Context, d *delivery.Delivery) error

	// Active returns the active delivery, or *errs.ObjectNotFoundError when
	// none has been confirmed yet.
	Active(ctx context.Context) (*delivery.Delivery, error)
}
