// Package clock supplies wall-clock timestamps to the ledger core.
// The core itself never calls time.Now, so tests can pin time exactly.
package clock

import "time"

// Clock is the time source collaborator.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// System returns the real wall clock (UTC).
func System() Clock { return systemClock{} }

// Fixed is a settable clock for tests.
type Fixed struct {
	T time.Time
}

// Now returns the pinned instant.
func (f *Fixed) Now() time.Time { return f.T }

// Advance moves the pinned instant forward by d.
func (f *Fixed) Advance(d time.Duration) { f.T = f.T.Add(d) }
