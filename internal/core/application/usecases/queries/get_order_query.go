// Package queries contains the read operations of the checkout flow.
// Queries never mutate state; they return plain snapshot values suited for
// direct presentation.
package queries

import (
	"errors"

	"checkout/internal/core/domain/model/order"
	"checkout/internal/pkg/guard"
)

// OrderStateReader is the read-side slice of the state-holder contract the
// query handlers depend on.
type OrderStateReader interface {
	// Current returns an immutable snapshot of the present state.
	Current() order.Snapshot

	// PickupOptions returns the pickup-day labels of the current order
	// instance.
	PickupOptions() []string
}

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the current order snapshot. It is parameterless:
// there is exactly one in-flight order configuration.
type GetOrderQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the current order state.
func NewGetOrderQuery() GetOrderQuery {
	return GetOrderQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}
