package commands

import (
	"context"

	"checkout/internal/core/domain/model/order"
)

// ChoosePickupDateCommandHandler applies pickup-date changes to the held
// order.
type ChoosePickupDateCommandHandler struct {
	state OrderState
}

// NewChoosePickupDateCommandHandler creates a handler bound to the given
// state holder.
func NewChoosePickupDateCommandHandler(state OrderState) ChoosePickupDateCommandHandler {
	return ChoosePickupDateCommandHandler{state: state}
}

// Handle validates the command and applies the pickup-date mutation. The
// holder re-derives the price and notifies observers on success.
func (h ChoosePickupDateCommandHandler) Handle(ctx context.Context, cmd ChoosePickupDateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.state.Apply(ctx, func(o *order.Order) error {
		return o.ChoosePickupDate(cmd.Label())
	})
}
