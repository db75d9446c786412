// Package input turns raw key events into control intents for the simulation.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses, never releases.
const keyHoldDuration = 120 * time.Millisecond

// Intent is the control state the simulation reads once per tick.
// The held flags mirror the keyboard; the thrust-adjust flags are one-shot
// triggers cleared by the simulation after it consumed them.
type Intent struct {
	TurnLeft       bool
	TurnRight      bool
	Thrusting      bool
	Firing         bool
	DecreaseThrust bool
	IncreaseThrust bool
}

// Apply copies the held flags from next and latches its one-shot triggers.
// A trigger that the simulation has not consumed yet is never dropped.
func (i *Intent) Apply(next Intent) {
	i.TurnLeft = next.TurnLeft
	i.TurnRight = next.TurnRight
	i.Thrusting = next.Thrusting
	i.Firing = next.Firing
	i.DecreaseThrust = i.DecreaseThrust || next.DecreaseThrust
	i.IncreaseThrust = i.IncreaseThrust || next.IncreaseThrust
}

// Frame is the result of one terminal read: the control intent plus the
// session-level commands handled outside the simulation.
type Frame struct {
	Intent  Intent
	Quit    bool
	Restart bool
	Pressed []byte
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	space time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// Read drains all available bytes from the stream (non-blocking) and returns
// the resulting frame. Keys stay held for keyHoldDuration after their last
// byte so that combinations like thrust+turn+fire work in a terminal.
func (s *Stream) Read(now time.Time) Frame {
	var buf []byte
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}
	return s.parse(buf, now)
}

// parse updates key state from buf and builds the frame.
func (s *Stream) parse(buf []byte, now time.Time) Frame {
	var f Frame
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			case 'B':
				i += 2
				continue
			}
		}

		switch b {
		case 'q', 'Q', '\x03':
			f.Quit = true
		case 'r', 'R', '\n', '\r':
			f.Restart = true
		case 'a', 'A', 'j', 'J':
			s.state.left = now
		case 'd', 'D', 'l', 'L':
			s.state.right = now
		case 'w', 'W', 'i', 'I':
			s.state.up = now
		case ' ':
			s.state.space = now
		case '-', '_':
			f.Intent.DecreaseThrust = true
		case '=', '+':
			f.Intent.IncreaseThrust = true
		}
	}

	f.Intent.TurnLeft = now.Sub(s.state.left) < keyHoldDuration
	f.Intent.TurnRight = now.Sub(s.state.right) < keyHoldDuration
	f.Intent.Thrusting = now.Sub(s.state.up) < keyHoldDuration
	f.Intent.Firing = now.Sub(s.state.space) < keyHoldDuration
	f.Pressed = buf
	return f
}
