// Package commands contains operations that change session state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Commands validate their input on construction; handlers only act on
// constructed commands.
package commands

import (
	"errors"

	"routebook/internal/core/domain/model/delivery"
	"routebook/internal/pkg/guard"
)

var (
	ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
		"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
	)
)

// ConfirmDeliveryCommand represents the user's acceptance of a parsed
// manifest. Once handled, the delivery becomes the active one that searches
// and route reports run against.
//
// Example:
//
//	pending, _ := readManifest.Handle(ctx, query)
//	cmd, err := NewConfirmDeliveryCommand(pending.Delivery)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery: %w", err)
//	}
//
//	handler := NewConfirmDeliveryCommandHandler(repo)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to confirm delivery: %w", err)
//	}
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	delivery *delivery.Delivery

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command adopting d as the active
// delivery. d must be a constructed Delivery.
func NewConfirmDeliveryCommand(d *delivery.Delivery) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDelivery(d); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmDeliveryCommandIsNotConstructed if validation fails.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// Delivery returns the delivery to adopt.
func (c ConfirmDeliveryCommand) Delivery() *delivery.Delivery {
	return c.delivery
}

func (c *ConfirmDeliveryCommand) setDelivery(d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}

	c.delivery = d
	return nil
}
