package commands

import (
	"errors"

	"checkout/internal/pkg/guard"
)

var ErrResetOrderCommandIsNotConstructed = errors.New(
	"ResetOrderCommand must be created via NewResetOrderCommand constructor",
)

// ResetOrderCommand requests a full replacement of the in-flight order with
// a fresh default one. The pickup options are recomputed against the
// current date as part of the replacement.
type ResetOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewResetOrderCommand creates a parameterless reset command.
func NewResetOrderCommand() ResetOrderCommand {
	return ResetOrderCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ResetOrderCommand) Validate() error {
	return c.guard.Validate(ErrResetOrderCommandIsNotConstructed)
}
