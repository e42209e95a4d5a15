package game

import "time"

// Clock abstracts time so event timestamps are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system time.
type SystemClock struct{}

// Now returns the current time using the system clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}
