package sched

import (
	"sync"
	"time"
)

// Manual is a Scheduler driven by a virtual clock. Nothing runs until the
// owner calls Advance or RunPending, and then only on the calling goroutine.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	posted []func()
	timers []*Task
}

// NewManual creates a manual scheduler with its clock at zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Post queues fn for the next RunPending or Advance.
func (m *Manual) Post(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posted = append(m.posted, fn)
}

// After queues fn to run when the virtual clock reaches now+d.
func (m *Manual) After(d time.Duration, fn func()) *Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &Task{fn: fn, due: m.now + d, seq: m.seq}
	m.timers = append(m.timers, t)
	return t
}

// Pending returns the number of timers that are neither run nor canceled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.Canceled() {
			n++
		}
	}
	return n
}

// RunPending runs posted tasks in FIFO order, including tasks they post.
func (m *Manual) RunPending() {
	for {
		m.mu.Lock()
		if len(m.posted) == 0 {
			m.mu.Unlock()
			return
		}
		fn := m.posted[0]
		m.posted[0] = nil
		m.posted = m.posted[1:]
		m.mu.Unlock()
		fn()
	}
}

// Advance moves the clock forward by d, running posted tasks first and then
// every timer that comes due, in due-time order. Timers scheduled by running
// tasks are honored if they fall within the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	m.RunPending()
	for {
		t := m.popDue(target)
		if t == nil {
			break
		}
		t.run()
		m.RunPending()
	}

	m.mu.Lock()
	m.now = target
	m.mu.Unlock()
}

// popDue removes and returns the earliest live timer due at or before target,
// moving the clock to its due time. Canceled timers are discarded.
func (m *Manual) popDue(target time.Duration) *Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.Canceled() {
			live = append(live, t)
		}
	}
	clear(m.timers[len(live):])
	m.timers = live

	best := -1
	for i, t := range m.timers {
		if t.due > target {
			continue
		}
		if best < 0 || t.due < m.timers[best].due || (t.due == m.timers[best].due && t.seq < m.timers[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	t := m.timers[best]
	m.timers = append(m.timers[:best], m.timers[best+1:]...)
	if t.due > m.now {
		m.now = t.due
	}
	return t
}
