package clock

import "time"

// Clock supplies the current time. Derivation logic (inspection labels,
// creation defaults) reads time through this interface so tests can pin
// the wall clock. All timestamps are UTC.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// New returns a Clock backed by the system wall clock.
func New() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed returns a Clock that always reports the given instant.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant.UTC()
}
