package kernel

import "time"

// Clock supplies the current time to the domain. The pickup schedule and the
// demo harness depend on it instead of calling time.Now directly, so tests
// can pin "today" to a fixed calendar day.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock. It reports wall-clock time in a
// configured location so "today" follows the shop's timezone rather than
// the host's.
type SystemClock struct {
	location *time.Location
}

// NewSystemClock creates a SystemClock for the given location.
// A nil location falls back to time.Local.
func NewSystemClock(location *time.Location) SystemClock {
	if location == nil {
		location = time.Local
	}
	return SystemClock{location: location}
}

// Now returns the current time in the clock's location.
func (c SystemClock) Now() time.Time {
	return time.Now().In(c.location)
}

// FixedClock is a Clock frozen at a single instant. Intended for tests and
// deterministic demos.
type FixedClock struct {
	instant time.Time
}

// NewFixedClock creates a FixedClock frozen at t.
func NewFixedClock(t time.Time) FixedClock {
	return FixedClock{instant: t}
}

// Now returns the frozen instant.
func (c FixedClock) Now() time.Time {
	return c.instant
}
