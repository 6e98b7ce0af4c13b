package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"checkout/internal/adapters/out/memory"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedDay = time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)

func newFactory(clock kernel.Clock) memory.OrderFactory {
	return func() (*order.Order, error) {
		schedule, err := order.NewPickupSchedule(clock)
		if err != nil {
			return nil, err
		}
		return order.NewOrder(kernel.NewUUID(), schedule, order.NewDefaultTariff())
	}
}

func newTestHolder(t *testing.T) *memory.StateHolder {
	t.Helper()
	holder, err := memory.NewStateHolder(newFactory(kernel.NewFixedClock(fixedDay)), nil)
	require.NoError(t, err)
	return holder
}

func TestNewStateHolder(t *testing.T) {
	t.Run("primes_a_default_order", func(t *testing.T) {
		holder := newTestHolder(t)

		snap := holder.Current()

		assert.Equal(t, 0, snap.Quantity)
		assert.Empty(t, snap.Flavor)
		assert.Empty(t, snap.PickupDate)
		assert.Equal(t, []string{"Mon Jan 1", "Tue Jan 2", "Wed Jan 3", "Thu Jan 4"}, snap.PickupOptions)
	})

	t.Run("nil_factory_is_rejected", func(t *testing.T) {
		_, err := memory.NewStateHolder(nil, nil)
		require.Error(t, err)
	})

	t.Run("factory_failure_propagates", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := memory.NewStateHolder(func() (*order.Order, error) { return nil, boom }, nil)
		require.ErrorIs(t, err, boom)
	})
}

func TestStateHolder_Apply(t *testing.T) {
	t.Run("successful_mutation_updates_state", func(t *testing.T) {
		holder := newTestHolder(t)

		err := holder.Apply(context.Background(), func(o *order.Order) error {
			return o.ChangeQuantity(5)
		})

		require.NoError(t, err)
		assert.Equal(t, 5, holder.Current().Quantity)
	})

	t.Run("failed_mutation_leaves_state_untouched", func(t *testing.T) {
		holder := newTestHolder(t)
		require.NoError(t, holder.Apply(context.Background(), func(o *order.Order) error {
			return o.ChangeQuantity(5)
		}))

		err := holder.Apply(context.Background(), func(o *order.Order) error {
			return o.ChangeQuantity(-1)
		})

		require.Error(t, err)
		assert.Equal(t, 5, holder.Current().Quantity)
	})

	t.Run("nil_mutation_is_rejected", func(t *testing.T) {
		holder := newTestHolder(t)
		require.Error(t, holder.Apply(context.Background(), nil))
	})

	t.Run("cancelled_context_is_rejected", func(t *testing.T) {
		holder := newTestHolder(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := holder.Apply(ctx, func(o *order.Order) error {
			return o.ChangeQuantity(5)
		})

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, holder.Current().Quantity)
	})
}

func TestStateHolder_Subscribe(t *testing.T) {
	t.Run("observers_see_every_update_in_order", func(t *testing.T) {
		holder := newTestHolder(t)
		var seen []int
		holder.Subscribe(func(snap order.Snapshot) {
			seen = append(seen, snap.Quantity)
		})

		for _, quantity := range []int{1, 2, 3} {
			q := quantity
			require.NoError(t, holder.Apply(context.Background(), func(o *order.Order) error {
				return o.ChangeQuantity(q)
			}))
		}

		assert.Equal(t, []int{1, 2, 3}, seen)
	})

	t.Run("emitted_snapshot_carries_formatted_price", func(t *testing.T) {
		holder := newTestHolder(t)
		var prices []string
		holder.Subscribe(func(snap order.Snapshot) {
			prices = append(prices, snap.Price)
		})

		options := holder.PickupOptions()
		require.NoError(t, holder.Apply(context.Background(), func(o *order.Order) error {
			return o.ChangeQuantity(5)
		}))
		require.NoError(t, holder.Apply(context.Background(), func(o *order.Order) error {
			return o.ChoosePickupDate(options[0])
		}))
		require.NoError(t, holder.Apply(context.Background(), func(o *order.Order) error {
			return o.ChoosePickupDate(options[1])
		}))

		assert.Equal(t, []string{"$10.00", "$13.00", "$10.00"}, prices)
	})

	t.Run("failed_mutation_emits_nothing", func(t *testing.T) {
		holder := newTestHolder(t)
		notified := 0
		holder.Subscribe(func(order.Snapshot) { notified++ })

		_ = holder.Apply(context.Background(), func(o *order.Order) error {
			return o.ChangeQuantity(-1)
		})

		assert.Zero(t, notified)
	})

	t.Run("multiple_observers_are_notified_in_registration_order", func(t *testing.T) {
		holder := newTestHolder(t)
		var callOrder []string
		holder.Subscribe(func(order.Snapshot) { callOrder = append(callOrder, "first") })
		holder.Subscribe(func(order.Snapshot) { callOrder = append(callOrder, "second") })

		require.NoError(t, holder.Apply(context.Background(), func(o *order.Order) error {
			return o.ChangeQuantity(1)
		}))

		assert.Equal(t, []string{"first", "second"}, callOrder)
	})

	t.Run("cancel_stops_notifications", func(t *testing.T) {
		holder := newTestHolder(t)
		notified := 0
		cancel := holder.Subscribe(func(order.Snapshot) { notified++ })

		require.NoError(t, holder.Apply(context.Background(), func(o *order.Order) error {
			return o.ChangeQuantity(1)
		}))
		cancel()
		cancel() // idempotent
		require.NoError(t, holder.Apply(context.Background(), func(o *order.Order) error {
			return o.ChangeQuantity(2)
		}))

		assert.Equal(t, 1, notified)
	})
}

func TestStateHolder_Reset(t *testing.T) {
	t.Run("restores_defaults_and_mints_new_identity", func(t *testing.T) {
		holder := newTestHolder(t)
		before := holder.Current()
		require.NoError(t, holder.Apply(context.Background(), func(o *order.Order) error {
			o.ChangeFlavor("chocolate")
			return o.ChangeQuantity(5)
		}))

		require.NoError(t, holder.Reset(context.Background()))

		after := holder.Current()
		assert.Equal(t, 0, after.Quantity)
		assert.Empty(t, after.Flavor)
		assert.Empty(t, after.PickupDate)
		assert.Equal(t, before.Price, after.Price) // default-derived price
		assert.NotEqual(t, before.OrderID, after.OrderID)
	})

	t.Run("recomputes_pickup_options_from_current_date", func(t *testing.T) {
		day := fixedDay
		clock := clockFunc(func() time.Time { return day })
		holder, err := memory.NewStateHolder(newFactory(clock), nil)
		require.NoError(t, err)
		assert.Equal(t, "Mon Jan 1", holder.PickupOptions()[0])

		day = day.AddDate(0, 0, 1) // the next calendar day
		require.NoError(t, holder.Reset(context.Background()))

		assert.Equal(t, []string{"Tue Jan 2", "Wed Jan 3", "Thu Jan 4", "Fri Jan 5"}, holder.PickupOptions())
	})

	t.Run("notifies_observers", func(t *testing.T) {
		holder := newTestHolder(t)
		notified := 0
		holder.Subscribe(func(order.Snapshot) { notified++ })

		require.NoError(t, holder.Reset(context.Background()))

		assert.Equal(t, 1, notified)
	})
}

// clockFunc adapts a func to kernel.Clock for movable test time.
type clockFunc func() time.Time

func (f clockFunc) Now() time.Time { return f() }
