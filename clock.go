// FILE: clock.go
package rotatelog

import "time"

// Clock abstracts the current time so interval-based rotation can be
// exercised deterministically in tests without real sleeps.
type Clock interface {
	Now() time.Time
}

// systemClock is the default Clock, backed by time.Now.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the default, wall-clock-backed Clock.
func SystemClock() Clock { return systemClock{} }
