package store

import (
	"sync"

	"github.com/samuelfernandof/context-agent-llm/core"
)

// InMemoryStore is a volatile ThreadStore implementation keeping the
// canonical thread per session in a process-local map. It is safe for
// concurrent access and best suited for tests or ephemeral demo hosts. Each
// returned thread is cloned so callers can never mutate internal state;
// concurrent writers resolve by last-writer-wins.
type InMemoryStore struct {
	mu      sync.RWMutex
	threads map[string]core.Thread
}

// NewInMemoryStore constructs an empty in-memory thread store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{threads: make(map[string]core.Thread)}
}

// Save stores a clone of the provided thread snapshot as the canonical state
// of its session, overwriting any previous snapshot.
func (s *InMemoryStore) Save(t core.Thread) error {
	if t.SessionID == "" {
		return ErrEmptySessionID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads[t.SessionID] = t.Clone()
	return nil
}

// Get returns the canonical thread (clone) for the session, lazily creating
// an empty one on first access.
func (s *InMemoryStore) Get(sessionID string) (core.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(sessionID).Clone(), nil
}

// AppendMessage grows the session's canonical thread by one message and
// returns the new canonical state.
func (s *InMemoryStore) AppendMessage(sessionID string, msg core.Message) (core.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := s.loadLocked(sessionID).AddMessage(msg)
	s.threads[sessionID] = updated
	return updated.Clone(), nil
}

// AppendToolCall grows the session's canonical thread by one tool call and
// returns the new canonical state.
func (s *InMemoryStore) AppendToolCall(sessionID string, tc core.ToolCall) (core.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := s.loadLocked(sessionID).AddToolCall(tc)
	s.threads[sessionID] = updated
	return updated.Clone(), nil
}

// loadLocked returns the stored thread or lazily creates an empty one; the
// caller must already hold the write lock.
func (s *InMemoryStore) loadLocked(sessionID string) core.Thread {
	if th, ok := s.threads[sessionID]; ok {
		return th
	}
	th := core.NewThread(sessionID)
	s.threads[sessionID] = th
	return th
}
