package queries

import (
	"errors"

	"checkout/internal/pkg/guard"
)

var ErrGetPickupOptionsQueryIsNotConstructed = errors.New(
	"GetPickupOptionsQuery must be created via NewGetPickupOptionsQuery constructor",
)

// GetPickupOptionsQuery retrieves the pickup-day labels offered with the
// current order instance, in offer order.
type GetPickupOptionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPickupOptionsQuery creates a query for the pickup options.
func NewGetPickupOptionsQuery() GetPickupOptionsQuery {
	return GetPickupOptionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPickupOptionsQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupOptionsQueryIsNotConstructed)
}
