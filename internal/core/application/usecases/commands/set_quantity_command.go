package commands

import (
	"errors"

	"checkout/internal/pkg/guard"
)

var (
	ErrSetQuantityCommandIsNotConstructed = errors.New(
		"SetQuantityCommand must be created via NewSetQuantityCommand constructor",
	)
	ErrQuantityIsNegative = errors.New("quantity must not be negative")
)

// SetQuantityCommand requests a change of the number of items in the
// in-flight order. The price is re-derived as part of applying it.
//
// Example:
//
//	cmd, err := NewSetQuantityCommand(5)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to set quantity: %w", err)
//	}
type SetQuantityCommand struct {
	quantity int

	guard guard.ConstructorGuard
}

// NewSetQuantityCommand creates a command to set the item count.
// Negative quantities are rejected; zero is allowed, it is the default.
func NewSetQuantityCommand(quantity int) (SetQuantityCommand, error) {
	if quantity < 0 {
		return SetQuantityCommand{}, ErrQuantityIsNegative
	}

	return SetQuantityCommand{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetQuantityCommandIsNotConstructed)
}

// Quantity returns the requested item count.
func (c SetQuantityCommand) Quantity() int {
	return c.quantity
}
