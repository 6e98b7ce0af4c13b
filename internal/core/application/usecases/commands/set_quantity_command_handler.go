package commands

import (
	"context"

	"checkout/internal/core/domain/model/order"
)

// SetQuantityCommandHandler applies quantity changes to the held order.
type SetQuantityCommandHandler struct {
	state OrderState
}

// NewSetQuantityCommandHandler creates a handler bound to the given state
// holder.
func NewSetQuantityCommandHandler(state OrderState) SetQuantityCommandHandler {
	return SetQuantityCommandHandler{state: state}
}

// Handle validates the command and applies the quantity mutation. The
// holder re-derives the price and notifies observers on success.
func (h SetQuantityCommandHandler) Handle(ctx context.Context, cmd SetQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.state.Apply(ctx, func(o *order.Order) error {
		return o.ChangeQuantity(cmd.Quantity())
	})
}
