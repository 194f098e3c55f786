package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/samuelfernandof/context-agent-llm/core"
)

// Archive is a trivial in-process ArchiveStore implementation useful for
// tests, examples and single-process prototypes. It keeps serialized thread
// snapshots in a nested map guarded by an RWMutex. Data is copied on save and
// retrieval to avoid accidental external mutation of internal buffers.
//
// Layout: sessionID -> revisionID -> canonical record bytes
//
// The implementation is intentionally minimal; it does not enforce retention
// limits, size quotas, or eviction. For anything that must survive a process
// restart, prefer a durable backend behind the same interface.
type Archive struct {
	mu        sync.RWMutex
	snapshots map[string]map[string][]byte
}

// NewArchive returns an empty in-memory archive.
func NewArchive() *Archive {
	return &Archive{snapshots: make(map[string]map[string][]byte)}
}

// Save stores (or overwrites) the snapshot bytes for the given session and
// revision. The input slice is copied before storage.
func (a *Archive) Save(sessionID, revisionID string, data []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.snapshots[sessionID]; !exists {
		a.snapshots[sessionID] = make(map[string][]byte)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	a.snapshots[sessionID][revisionID] = cp
	return nil
}

// Get returns a copy of the stored snapshot bytes or ErrNotFound.
func (a *Archive) Get(sessionID, revisionID string) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	m, ok := a.snapshots[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	data, ok := m[revisionID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

// List returns the revision ids stored for the session. The slice is a
// snapshot and safe for caller mutation.
func (a *Archive) List(sessionID string) ([]string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	m, ok := a.snapshots[sessionID]
	if !ok {
		return []string{}, nil
	}
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	return ids, nil
}

// Delete removes the snapshot if present or returns ErrNotFound.
func (a *Archive) Delete(sessionID, revisionID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	m, ok := a.snapshots[sessionID]
	if !ok {
		return ErrNotFound
	}
	if _, ok := m[revisionID]; !ok {
		return ErrNotFound
	}
	delete(m, revisionID)
	return nil
}

// SaveThread serializes the thread's canonical record form and stores it
// under a newly generated revision id, which is returned for later retrieval.
func (a *Archive) SaveThread(t core.Thread) (string, error) {
	if t.SessionID == "" {
		return "", ErrEmptySessionID
	}
	raw, err := json.Marshal(t.ToMap())
	if err != nil {
		return "", fmt.Errorf("archive thread: %w", err)
	}
	revisionID := core.NewID()
	if err := a.Save(t.SessionID, revisionID, raw); err != nil {
		return "", err
	}
	return revisionID, nil
}

// LoadThread retrieves a snapshot and reconstructs the thread from its
// canonical record form.
func (a *Archive) LoadThread(sessionID, revisionID string) (core.Thread, error) {
	raw, err := a.Get(sessionID, revisionID)
	if err != nil {
		return core.Thread{}, err
	}
	var record map[string]any
	if err := json.Unmarshal(raw, &record); err != nil {
		return core.Thread{}, fmt.Errorf("decode snapshot: %w", err)
	}
	t, err := core.ThreadFromMap(record)
	if err != nil {
		return core.Thread{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return t, nil
}
