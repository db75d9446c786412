// Package server tracks the game sessions hosted by a single process.
// Every session runs its own simulation; the registry only bounds their
// number and relays lifecycle events such as shutdown.
package server

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ErrFull is returned by Register when the session limit is reached.
var ErrFull = errors.New("server is full")

// EventType identifies a lifecycle event sent to a session.
type EventType int

const (
	EventServerShutdown EventType = iota
)

// Event is sent from the registry to a session.
type Event struct {
	Type EventType
}

// Session is a registered client.
type Session struct {
	ID       int
	Username string
	Events   chan Event
}

// Registry manages the set of active sessions.
type Registry struct {
	mu          sync.RWMutex
	sessions    map[int]*Session
	nextID      int
	maxSessions int
	closing     bool
	logger      *log.Logger
}

// NewRegistry creates a registry admitting at most maxSessions sessions.
func NewRegistry(maxSessions int, logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Registry{
		sessions:    make(map[int]*Session),
		nextID:      1,
		maxSessions: maxSessions,
		logger:      logger,
	}
}

// Register admits a new session.
func (r *Registry) Register(username string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closing {
		return nil, errors.New("server is shutting down")
	}
	if len(r.sessions) >= r.maxSessions {
		return nil, ErrFull
	}

	s := &Session{
		ID:       r.nextID,
		Username: username,
		Events:   make(chan Event, 4),
	}
	r.nextID++
	r.sessions[s.ID] = s
	r.logger.Info("session registered", "id", s.ID, "user", username, "sessions", len(r.sessions))
	return s, nil
}

// Unregister removes a session. Unknown ids are ignored.
func (r *Registry) Unregister(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return
	}
	delete(r.sessions, id)
	r.logger.Info("session unregistered", "id", id, "user", s.Username, "sessions", len(r.sessions))
}

// Count returns the number of active sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Shutdown refuses new sessions, notifies the active ones and waits for them
// to disconnect or for timeout to pass.
func (r *Registry) Shutdown(timeout time.Duration) {
	r.mu.Lock()
	r.closing = true
	for _, s := range r.sessions {
		select {
		case s.Events <- Event{Type: EventServerShutdown}:
		default:
		}
	}
	r.mu.Unlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if r.Count() == 0 {
			return
		}
		select {
		case <-deadline:
			r.logger.Warn("shutdown timed out", "sessions", r.Count())
			return
		case <-ticker.C:
		}
	}
}
