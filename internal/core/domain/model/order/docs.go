// Package order provides the domain model for a single in-flight order
// configuration in the checkout flow.
//
// The package includes:
//   - Order: the aggregate holding quantity, flavor, pickup date, and the
//     derived display price
//   - PickupSchedule: the four pickup-day labels offered for one order
//     instance, fixed at construction
//   - Tariff: the pricing policy (unit price, same-day surcharge, display
//     locale)
//   - Snapshot: the immutable view emitted to observers after every mutation
//
// Key business rules:
//   - The price is re-derived from quantity and pickup date on every
//     mutation of either; it is never set directly
//   - Choosing the first pickup option (same-day pickup) adds a fixed
//     surcharge; all other options add none
//   - Quantity must be non-negative; flavor and pickup date are stored
//     verbatim without validation, since the flavor menu and the date labels
//     are owned by the caller
package order
