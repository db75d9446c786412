package sched

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLoopRunsOnDriver(t *testing.T) {
	l := NewEventLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()

	done := make(chan struct{})
	var order []int
	l.Post(func() { order = append(order, 1) })
	l.After(5*time.Millisecond, func() {
		order = append(order, 2)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer task did not run")
	}
	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)
	assert.Equal(t, []int{1, 2}, order)
}

func TestEventLoopCancel(t *testing.T) {
	l := NewEventLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = l.Run(ctx) }()

	var ran atomic.Bool
	task := l.After(20*time.Millisecond, func() { ran.Store(true) })
	l.Post(task.Cancel)

	flushed := make(chan struct{})
	l.After(60*time.Millisecond, func() { close(flushed) })
	<-flushed
	assert.False(t, ran.Load())
}

func TestEventLoopPostAfterStop(t *testing.T) {
	l := NewEventLoop()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, l.Run(ctx), context.Canceled)

	<-l.Done()
	for range defaultQueueSize + 10 {
		l.Post(func() {})
	}
}
