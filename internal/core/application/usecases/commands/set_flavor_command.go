package commands

import (
	"errors"

	"checkout/internal/pkg/guard"
)

var ErrSetFlavorCommandIsNotConstructed = errors.New(
	"SetFlavorCommand must be created via NewSetFlavorCommand constructor",
)

// SetFlavorCommand requests a change of the chosen flavor. The flavor menu
// is owned by the caller, so the value is carried verbatim; an empty string
// clears the selection.
type SetFlavorCommand struct {
	flavor string

	guard guard.ConstructorGuard
}

// NewSetFlavorCommand creates a command to set the flavor.
func NewSetFlavorCommand(flavor string) SetFlavorCommand {
	return SetFlavorCommand{
		flavor: flavor,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SetFlavorCommand) Validate() error {
	return c.guard.Validate(ErrSetFlavorCommandIsNotConstructed)
}

// Flavor returns the requested flavor label.
func (c SetFlavorCommand) Flavor() string {
	return c.flavor
}
