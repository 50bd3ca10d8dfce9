package commands

import (
	"context"
	"fmt"

	"routebook/internal/core/ports"
)

// ConfirmDeliveryCommandHandler makes a confirmed delivery the active one.
// The previous delivery, if any, is replaced as a whole.
type ConfirmDeliveryCommandHandler struct {
	repo ports.DeliveryRepository
}

// NewConfirmDeliveryCommandHandler creates a handler backed by repo.
func NewConfirmDeliveryCommandHandler(repo ports.DeliveryRepository) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		repo: repo,
	}
}

// Handle stores the command's delivery as the active delivery.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.repo.Replace(ctx, cmd.Delivery()); err != nil {
		return fmt.Errorf("replace active delivery: %w", err)
	}

	return nil
}
