package store

import (
	"strings"
	"sync"

	"github.com/samuelfernandof/context-agent-llm/core"
)

// InMemoryJournal is a naive process-local EventJournal keeping an
// append-only event history per session.
//
// Concurrency: protected by RWMutex.
// Search: linear scan with substring matching (case sensitive) over string
// values in event data. Suitable for tests and demos; swap for an indexed
// backend when histories grow large.
type InMemoryJournal struct {
	mu     sync.RWMutex
	events map[string][]core.Event
}

// NewInMemoryJournal creates an empty in-memory event journal.
func NewInMemoryJournal() *InMemoryJournal {
	return &InMemoryJournal{events: make(map[string][]core.Event)}
}

// Record appends the event to the session's history. The event's data map is
// copied one level deep before storage so later caller mutation cannot reach
// journaled history.
func (j *InMemoryJournal) Record(sessionID string, ev core.Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if ev.Data != nil {
		data := make(map[string]any, len(ev.Data))
		for k, v := range ev.Data {
			data[k] = v
		}
		ev.Data = data
	}
	j.events[sessionID] = append(j.events[sessionID], ev)
	return nil
}

// Events returns a copy of the session's full event history in recording
// order. Unknown sessions yield an empty history.
func (j *InMemoryJournal) Events(sessionID string) ([]core.Event, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	history := j.events[sessionID]
	out := make([]core.Event, len(history))
	copy(out, history)
	return out, nil
}

// Search returns events whose data contains the query as a substring of any
// string value, in recording order up to limit (limit <= 0 means no limit).
// An empty query matches every event.
func (j *InMemoryJournal) Search(sessionID, query string, limit int) ([]core.Event, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := []core.Event{}
	for _, ev := range j.events[sessionID] {
		if limit > 0 && len(out) >= limit {
			break
		}
		if query == "" || eventMatches(ev, query) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func eventMatches(ev core.Event, query string) bool {
	for _, v := range ev.Data {
		if s, ok := v.(string); ok && strings.Contains(s, query) {
			return true
		}
	}
	return false
}
