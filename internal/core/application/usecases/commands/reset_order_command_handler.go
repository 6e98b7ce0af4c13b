package commands

import "context"

// ResetOrderCommandHandler replaces the held order with a fresh default
// instance.
type ResetOrderCommandHandler struct {
	state OrderState
}

// NewResetOrderCommandHandler creates a handler bound to the given state
// holder.
func NewResetOrderCommandHandler(state OrderState) ResetOrderCommandHandler {
	return ResetOrderCommandHandler{state: state}
}

// Handle validates the command and resets the state. Observers receive the
// fresh default snapshot.
func (h ResetOrderCommandHandler) Handle(ctx context.Context, cmd ResetOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.state.Reset(ctx)
}
