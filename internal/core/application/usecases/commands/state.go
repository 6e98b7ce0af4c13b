// Package commands contains the write operations of the checkout flow.
// Every command follows the same pattern: a constructor-guarded value with
// validated inputs, and a handler that applies the mutation through the
// order-state holder.
package commands

import (
	"context"

	"checkout/internal/core/domain/model/order"
)

// OrderState is the slice of the state-holder contract the command handlers
// depend on. The in-memory adapter satisfies it; tests substitute mocks.
type OrderState interface {
	// Apply runs a mutation atomically against the held order.
	Apply(ctx context.Context, mutate func(*order.Order) error) error

	// Reset replaces the held order with a fresh default instance.
	Reset(ctx context.Context) error
}
