// Package ports declares the boundary contracts of the checkout core.
// Adapters implement them; the application layer depends on them.
package ports

import (
	"context"

	"checkout/internal/core/domain/model/order"
)

// Observer receives the snapshot that results from an applied mutation.
// Observers are notified synchronously, one mutation at a time, in the
// order mutations were applied. An observer runs inside the holder's
// critical section and must not call back into the holder; it should read
// the snapshot it was handed instead.
type Observer func(order.Snapshot)

// OrderState is the single in-memory holder of the in-flight order
// configuration. It owns the aggregate: callers never touch order fields
// directly, they submit mutations through Apply and read through Current.
//
// Mutations are atomic. A mutation that returns an error changes nothing
// and emits nothing; a successful one is followed by exactly one
// notification carrying the resulting snapshot.
type OrderState interface {
	// Current returns an immutable snapshot of the present state.
	Current() order.Snapshot

	// PickupOptions returns the pickup-day labels of the current order
	// instance.
	PickupOptions() []string

	// Apply runs a mutation against the held order. The mutation sees a
	// working copy: if it fails, the held state is untouched.
	Apply(ctx context.Context, mutate func(*order.Order) error) error

	// Reset discards the held order and installs a fresh default one,
	// with pickup options recomputed from the current date.
	Reset(ctx context.Context) error

	// Subscribe registers an observer for subsequent state changes and
	// returns a cancel function that stops further notifications.
	Subscribe(observer Observer) (cancel func())
}
