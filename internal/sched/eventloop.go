package sched

import (
	"context"
	"sync"
	"time"
)

const defaultQueueSize = 256

// EventLoop is a real-time Scheduler. Timers fire on runtime goroutines and
// only enqueue; Run executes everything on the calling goroutine.
type EventLoop struct {
	tasks    chan func()
	done     chan struct{}
	stopOnce sync.Once
}

// NewEventLoop creates an event loop. Call Run to start executing tasks.
func NewEventLoop() *EventLoop {
	return &EventLoop{
		tasks: make(chan func(), defaultQueueSize),
		done:  make(chan struct{}),
	}
}

// Post queues fn. After Run has returned, fn is dropped.
func (l *EventLoop) Post(fn func()) {
	select {
	case l.tasks <- fn:
	case <-l.done:
	}
}

// After queues fn once d has elapsed.
func (l *EventLoop) After(d time.Duration, fn func()) *Task {
	t := &Task{fn: fn}
	t.timer = time.AfterFunc(d, func() {
		l.Post(t.run)
	})
	return t
}

// Run executes queued tasks until ctx is done. It returns ctx.Err().
func (l *EventLoop) Run(ctx context.Context) error {
	defer l.stopOnce.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Done is closed once Run has returned.
func (l *EventLoop) Done() <-chan struct{} {
	return l.done
}
