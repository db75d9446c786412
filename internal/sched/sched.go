// Package sched runs simulation work on a single driver.
//
// Every callback handed to a Scheduler runs on the driver, one at a time, so
// the code it calls needs no locks. Producers on other goroutines only Post.
package sched

import (
	"sync/atomic"
	"time"
)

// Scheduler queues work for the driver.
type Scheduler interface {
	// Post queues fn to run on the driver as soon as possible.
	Post(fn func())
	// After queues fn to run on the driver once d has elapsed.
	After(d time.Duration, fn func()) *Task
}

// Task is a handle to delayed work returned by After.
type Task struct {
	fn       func()
	canceled atomic.Bool

	timer *time.Timer // EventLoop

	due time.Duration // Manual
	seq uint64
}

// Cancel prevents the task from running. A canceled task never runs, even if
// its timer already fired and the callback is queued. Cancel on a nil task is a no-op.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.canceled.Store(true)
	if t.timer != nil {
		t.timer.Stop()
	}
}

// Canceled reports whether Cancel was called.
func (t *Task) Canceled() bool {
	return t.canceled.Load()
}

func (t *Task) run() {
	if t.canceled.Load() {
		return
	}
	t.fn()
}
