package scheduler

import "time"

// Clock abstracts "now" so tests can pin or advance time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// SystemClock returns the real UTC clock.
func SystemClock() Clock {
	return systemClock{}
}
