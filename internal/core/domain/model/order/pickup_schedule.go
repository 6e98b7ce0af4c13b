package order

import (
	"errors"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

// PickupOptionCount is the number of pickup days offered with every order.
const PickupOptionCount = 4

// pickupLabelLayout renders a day as abbreviated weekday, abbreviated month,
// and day of month, e.g. "Mon Jan 1".
const pickupLabelLayout = "Mon Jan 2"

// ErrPickupScheduleIsNotConstructed is returned when a PickupSchedule was
// not created via NewPickupSchedule.
var ErrPickupScheduleIsNotConstructed = errors.New("PickupSchedule must be created via NewPickupSchedule")

// PickupSchedule holds the pickup-day labels offered for one order
// instance: exactly PickupOptionCount labels, starting at "today" as seen by
// the clock at construction and advancing one calendar day per entry. The
// schedule is fixed for the lifetime of its order; a reset builds a new one.
type PickupSchedule struct {
	labels [PickupOptionCount]string

	guard guard.ConstructorGuard
}

// NewPickupSchedule builds a schedule from the clock's current day.
// Days advance by calendar date, not by 24-hour steps, so the labels stay
// correct across DST transitions and month or year boundaries.
func NewPickupSchedule(clock kernel.Clock) (PickupSchedule, error) {
	if clock == nil {
		return PickupSchedule{}, errs.NewValueIsRequiredError("clock")
	}

	now := clock.Now()
	schedule := PickupSchedule{guard: guard.NewConstructorGuard()}
	for i := range schedule.labels {
		day := time.Date(now.Year(), now.Month(), now.Day()+i, 0, 0, 0, 0, now.Location())
		schedule.labels[i] = day.Format(pickupLabelLayout)
	}

	return schedule, nil
}

// Validate ensures the schedule was created via NewPickupSchedule.
func (s PickupSchedule) Validate() error {
	return s.guard.Validate(ErrPickupScheduleIsNotConstructed)
}

// Labels returns a copy of the pickup-day labels in offer order.
func (s PickupSchedule) Labels() []string {
	labels := make([]string, PickupOptionCount)
	copy(labels, s.labels[:])
	return labels
}

// First returns the same-day option, the label at position 0.
func (s PickupSchedule) First() string {
	return s.labels[0]
}

// IsSameDay reports whether label is the same-day option. Labels are
// compared verbatim; an empty or unknown label is never same-day.
func (s PickupSchedule) IsSameDay(label string) bool {
	return label != "" && label == s.labels[0]
}
