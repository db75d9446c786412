package client

import (
	"sync"
	"time"

	"github.com/tomz197/powerroids/internal/loop"
)

// Screen is what the client is currently showing.
type Screen int

const (
	ScreenTitle    Screen = iota // Title and controls
	ScreenPlaying                // Game running (including level transition and game over)
	ScreenShutdown               // Server is shutting down
)

// State holds per-session presentation state. Only the client goroutine touches it.
type State struct {
	Screen           Screen
	Running          bool
	shutdownDeadline time.Time
	isInactive       bool

	// Last values drawn, to detect when a full clear is needed.
	prevScreen  Screen
	wasInactive bool
	prevMessage string
	needsClear  bool
}

// NewState creates the state for a new session.
func NewState() *State {
	return &State{
		Screen:     ScreenTitle,
		Running:    true,
		needsClear: true,
	}
}

// frameSlot passes the latest snapshot and HUD from the simulation driver to
// the client goroutine.
type frameSlot struct {
	mu       sync.Mutex
	snapshot loop.Snapshot
	hud      loop.HUDState
	ready    bool
}

func (f *frameSlot) setSnapshot(s loop.Snapshot) {
	f.mu.Lock()
	f.snapshot = s
	f.ready = true
	f.mu.Unlock()
}

func (f *frameSlot) setHUD(h loop.HUDState) {
	f.mu.Lock()
	f.hud = h
	f.mu.Unlock()
}

func (f *frameSlot) load() (loop.Snapshot, loop.HUDState, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot, f.hud, f.ready
}
