package scheduler

import "time"

// Clock abstracts wall-clock reads and frame scheduling so tests can drive
// the scheduler without sleeping. The real implementation wraps
// time.Now/time.AfterFunc; tests substitute a fake clock driven by hand.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is the subset of *time.Timer the scheduler needs.
type Timer interface {
	Stop() bool
}

// realClock is the production Clock, backed by the standard library.
type realClock struct{}

// RealClock returns the Clock used outside of tests.
func RealClock() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// FrameInterval is the cadence of the scheduler's internal polling frame,
// analogous to a host's requestAnimationFrame tick.
const FrameInterval = 16 * time.Millisecond
