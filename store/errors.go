package store

import "fmt"

var (
	// ErrNotFound is returned when a snapshot for the given session /
	// revision pair does not exist in the underlying store.
	ErrNotFound = fmt.Errorf("snapshot not found")

	// ErrEmptySessionID is returned when a thread without a session id is
	// handed to a store; nothing could ever be looked up again under an
	// empty key.
	ErrEmptySessionID = fmt.Errorf("session id is empty")
)
