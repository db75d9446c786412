package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualRunsInDueOrder(t *testing.T) {
	m := NewManual()
	var got []string
	m.After(30*time.Millisecond, func() { got = append(got, "c") })
	m.After(10*time.Millisecond, func() { got = append(got, "a") })
	m.After(10*time.Millisecond, func() { got = append(got, "b") })

	m.Advance(20 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 20*time.Millisecond, m.Now())

	m.Advance(10 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Zero(t, m.Pending())
}

func TestManualPostRunsBeforeTimers(t *testing.T) {
	m := NewManual()
	var got []int
	m.After(0, func() { got = append(got, 2) })
	m.Post(func() {
		got = append(got, 1)
		m.Post(func() { got = append(got, 3) })
	})
	m.Advance(0)
	assert.Equal(t, []int{1, 3, 2}, got)
}

func TestManualCancel(t *testing.T) {
	m := NewManual()
	ran := false
	task := m.After(time.Second, func() { ran = true })
	assert.Equal(t, 1, m.Pending())

	task.Cancel()
	assert.True(t, task.Canceled())
	m.Advance(2 * time.Second)
	assert.False(t, ran)
	assert.Zero(t, m.Pending())

	var nilTask *Task
	assert.NotPanics(t, nilTask.Cancel)
}

func TestManualRescheduleWithinWindow(t *testing.T) {
	m := NewManual()
	count := 0
	var tick func()
	tick = func() {
		count++
		m.After(10*time.Millisecond, tick)
	}
	m.After(10*time.Millisecond, tick)

	m.Advance(100 * time.Millisecond)
	assert.Equal(t, 10, count)
	assert.Equal(t, 1, m.Pending())
}

func TestManualTaskSeesDueTime(t *testing.T) {
	m := NewManual()
	var at time.Duration
	m.After(15*time.Millisecond, func() { at = m.Now() })
	m.Advance(time.Second)
	assert.Equal(t, 15*time.Millisecond, at)
}

func TestManualCancelFromEarlierTask(t *testing.T) {
	m := NewManual()
	ran := false
	later := m.After(20*time.Millisecond, func() { ran = true })
	m.After(10*time.Millisecond, later.Cancel)
	m.Advance(time.Second)
	assert.False(t, ran)
}
