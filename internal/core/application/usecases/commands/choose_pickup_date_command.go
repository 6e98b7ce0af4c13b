package commands

import (
	"errors"

	"checkout/internal/pkg/guard"
)

var ErrChoosePickupDateCommandIsNotConstructed = errors.New(
	"ChoosePickupDateCommand must be created via NewChoosePickupDateCommand constructor",
)

// ChoosePickupDateCommand requests a change of the pickup date. Callers are
// expected to pass one of the labels from the current pickup options, but
// the value is deliberately not checked against them: any string is carried
// verbatim, and the same-day surcharge applies exactly when it equals the
// first option. An empty string clears the selection.
type ChoosePickupDateCommand struct {
	label string

	guard guard.ConstructorGuard
}

// NewChoosePickupDateCommand creates a command to choose a pickup date.
func NewChoosePickupDateCommand(label string) ChoosePickupDateCommand {
	return ChoosePickupDateCommand{
		label: label,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ChoosePickupDateCommand) Validate() error {
	return c.guard.Validate(ErrChoosePickupDateCommandIsNotConstructed)
}

// Label returns the requested pickup-date label.
func (c ChoosePickupDateCommand) Label() string {
	return c.label
}
