package order

import (
	"errors"
	"fmt"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for one in-flight order configuration.
// It holds the customer's current choices and the price derived from them.
//
// Order maintains these invariants:
//   - The price always reflects the last-set quantity and pickup date; both
//     mutators re-derive it through the tariff before returning
//   - The pickup schedule is fixed at construction; replacing it means
//     replacing the whole Order (see the reset operation in the
//     application layer)
//   - Quantity is non-negative; a rejected mutation leaves the Order
//     untouched
//
// Flavor and pickup date are stored verbatim. The flavor menu belongs to
// the caller, and a pickup date that is not one of the schedule's labels
// simply never matches the same-day option.
type Order struct {
	// id distinguishes this order instance; a reset mints a new one
	id kernel.UUID

	// quantity is the number of items requested, zero by default
	quantity int

	// flavor is the item flavor chosen from the externally owned menu
	flavor string

	// pickupDate is the chosen pickup label, empty before selection
	pickupDate string

	// price is derived from quantity and pickupDate via the tariff
	price kernel.Money

	// schedule is the set of pickup options offered with this instance
	schedule PickupSchedule

	// tariff is the pricing policy used to derive price
	tariff Tariff

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an Order with default choices: zero quantity, no flavor,
// no pickup date, and the price derived from those defaults.
//
// Parameters:
//   - id: identity of this order instance (must be a constructed UUID)
//   - schedule: the pickup options to offer (must be constructed)
//   - tariff: the pricing policy (must be constructed)
func NewOrder(id kernel.UUID, schedule PickupSchedule, tariff Tariff) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		schedule.Validate(),
		tariff.Validate(),
	); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		schedule:      schedule,
		tariff:        tariff,
		isConstructed: true,
	}

	if err := o.derivePrice(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was created through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the identity of this order instance.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Quantity returns the number of items requested.
func (o *Order) Quantity() int {
	return o.quantity
}

// Flavor returns the chosen flavor, empty before selection.
func (o *Order) Flavor() string {
	return o.flavor
}

// PickupDate returns the chosen pickup label, empty before selection.
func (o *Order) PickupDate() string {
	return o.pickupDate
}

// Price returns the derived order total.
func (o *Order) Price() kernel.Money {
	return o.price
}

// PickupOptions returns a copy of the pickup-day labels offered with this
// order.
func (o *Order) PickupOptions() []string {
	return o.schedule.Labels()
}

// ChangeQuantity sets the number of items and re-derives the price.
// Negative quantities are rejected and leave the order unchanged.
func (o *Order) ChangeQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is less than 0", quantity),
		)
	}

	o.quantity = quantity
	return o.derivePrice()
}

// ChangeFlavor sets the flavor verbatim. The price does not depend on the
// flavor, so it is left untouched.
func (o *Order) ChangeFlavor(flavor string) {
	o.flavor = flavor
}

// ChoosePickupDate sets the pickup label verbatim and re-derives the price.
// The same-day surcharge applies exactly when the label equals the first
// pickup option.
func (o *Order) ChoosePickupDate(label string) error {
	o.pickupDate = label
	return o.derivePrice()
}

// Snapshot returns an immutable view of the current state for observers.
// The price is rendered in the tariff's locale; the options slice is a copy.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		OrderID:       o.id.String(),
		Quantity:      o.quantity,
		Flavor:        o.flavor,
		PickupDate:    o.pickupDate,
		Price:         o.tariff.Display(o.price),
		PickupOptions: o.schedule.Labels(),
	}
}

// Clone returns an independent copy of the order. Every field is a value
// type, so a shallow copy is a full copy.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	return &clone
}

// derivePrice recomputes the total from the two fields that affect it.
func (o *Order) derivePrice() error {
	price, err := o.tariff.Quote(o.quantity, o.schedule.IsSameDay(o.pickupDate))
	if err != nil {
		return err
	}

	o.price = price
	return nil
}

// Snapshot is the read-only view of an Order published to observers after
// every applied mutation. All fields are plain values; mutating a Snapshot
// never affects the Order it came from.
type Snapshot struct {
	OrderID       string
	Quantity      int
	Flavor        string
	PickupDate    string
	Price         string
	PickupOptions []string
}
