package scheduler

import "time"

// fakeClock is a manually-advanced Clock for deterministic scheduler tests.
// AfterFunc never fires on a real timer; advance() runs any pending
// callback whose deadline has passed.
type fakeClock struct {
	now     time.Time
	pending []*fakeTimer
}

type fakeTimer struct {
	deadline time.Time
	fn       func()
	stopped  bool
}

func (f *fakeTimer) Stop() bool {
	was := !f.stopped
	f.stopped = true
	return was
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(0, 0)}
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	t := &fakeTimer{deadline: f.now.Add(d), fn: fn}
	f.pending = append(f.pending, t)
	return t
}

// advance moves time forward by d, firing any due timers in deadline order,
// including ones scheduled by fired callbacks themselves.
func (f *fakeClock) advance(d time.Duration) {
	target := f.now.Add(d)
	for {
		idx := -1
		for i, t := range f.pending {
			if t.stopped {
				continue
			}
			if !t.deadline.After(target) {
				if idx == -1 || t.deadline.Before(f.pending[idx].deadline) {
					idx = i
				}
			}
		}
		if idx == -1 {
			break
		}
		due := f.pending[idx]
		f.pending = append(f.pending[:idx], f.pending[idx+1:]...)
		f.now = due.deadline
		due.fn()
	}
	f.now = target
}
