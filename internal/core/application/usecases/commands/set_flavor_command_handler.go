package commands

import (
	"context"

	"checkout/internal/core/domain/model/order"
)

// SetFlavorCommandHandler applies flavor changes to the held order.
type SetFlavorCommandHandler struct {
	state OrderState
}

// NewSetFlavorCommandHandler creates a handler bound to the given state
// holder.
func NewSetFlavorCommandHandler(state OrderState) SetFlavorCommandHandler {
	return SetFlavorCommandHandler{state: state}
}

// Handle validates the command and stores the flavor. The price is not
// affected; observers still receive the updated snapshot.
func (h SetFlavorCommandHandler) Handle(ctx context.Context, cmd SetFlavorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.state.Apply(ctx, func(o *order.Order) error {
		o.ChangeFlavor(cmd.Flavor())
		return nil
	})
}
