// Package memory implements the OrderState port as a mutex-guarded
// in-process holder with synchronous observer notification.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"
)

// OrderFactory builds a fresh default order. The composition root closes it
// over the clock and tariff so the holder recomputes pickup options against
// the current date on every reset.
type OrderFactory func() (*order.Order, error)

// StateHolder is the in-memory implementation of ports.OrderState.
//
// It owns a single order aggregate. Mutations run on a working copy and are
// swapped in only on success, so a failed mutation leaves the held state and
// the observers untouched. After every successful mutation the resulting
// snapshot is delivered synchronously to all observers in registration
// order, under the holder's lock, which guarantees observers see the exact
// sequence of applied states.
//
// The holder is safe for concurrent use, although the checkout flow has a
// single logical writer.
type StateHolder struct {
	mu        sync.Mutex
	current   *order.Order
	factory   OrderFactory
	observers []subscription
	nextSubID int
	logger    *slog.Logger
}

type subscription struct {
	id       int
	observer ports.Observer
}

// NewStateHolder creates a holder primed with a fresh order from factory.
func NewStateHolder(factory OrderFactory, logger *slog.Logger) (*StateHolder, error) {
	if factory == nil {
		return nil, errs.NewValueIsRequiredError("order factory")
	}
	if logger == nil {
		logger = slog.Default()
	}

	initial, err := factory()
	if err != nil {
		return nil, err
	}
	if err = initial.Validate(); err != nil {
		return nil, err
	}

	return &StateHolder{
		current: initial,
		factory: factory,
		logger:  logger.With("component", "order_state"),
	}, nil
}

var _ ports.OrderState = (*StateHolder)(nil)

// Current returns a snapshot of the held order.
func (h *StateHolder) Current() order.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current.Snapshot()
}

// PickupOptions returns the pickup-day labels of the held order instance.
func (h *StateHolder) PickupOptions() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current.PickupOptions()
}

// Apply runs mutate against a copy of the held order and installs the copy
// on success. Exactly one notification follows a successful mutation;
// a failed one emits nothing.
func (h *StateHolder) Apply(ctx context.Context, mutate func(*order.Order) error) error {
	if mutate == nil {
		return errs.NewValueIsRequiredError("mutation")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	working := h.current.Clone()
	if err := mutate(working); err != nil {
		return err
	}

	h.current = working
	h.notifyLocked(ctx)
	return nil
}

// Reset replaces the held order with a fresh default instance built by the
// factory, recomputing pickup options against the current date, and
// notifies observers of the new state.
func (h *StateHolder) Reset(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	fresh, err := h.factory()
	if err != nil {
		return err
	}
	if err = fresh.Validate(); err != nil {
		return err
	}

	h.current = fresh
	h.notifyLocked(ctx)
	return nil
}

// Subscribe registers an observer for subsequent state changes. The
// returned cancel function is idempotent. Observers are invoked while the
// holder's lock is held: calling any StateHolder method, including cancel,
// from inside an observer deadlocks.
func (h *StateHolder) Subscribe(observer ports.Observer) (cancel func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextSubID
	h.nextSubID++
	h.observers = append(h.observers, subscription{id: id, observer: observer})

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, sub := range h.observers {
			if sub.id == id {
				h.observers = append(h.observers[:i], h.observers[i+1:]...)
				return
			}
		}
	}
}

// notifyLocked delivers the current snapshot to all observers in
// registration order. Callers must hold h.mu.
func (h *StateHolder) notifyLocked(ctx context.Context) {
	snap := h.current.Snapshot()
	h.logger.DebugContext(ctx, "state changed",
		"order_id", snap.OrderID,
		"quantity", snap.Quantity,
		"flavor", snap.Flavor,
		"pickup_date", snap.PickupDate,
		"price", snap.Price,
	)
	for _, sub := range h.observers {
		sub.observer(snap)
	}
}
