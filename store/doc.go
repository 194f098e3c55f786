// Package store contains concrete implementations of the core store
// contracts: ThreadStore, EventJournal and ArchiveStore. The interfaces
// themselves live in the core package to centralize domain contracts; callers
// should depend on those rather than the concrete types so alternative
// backends can be substituted at wiring time.
//
// All implementations here are volatile and process-local, guarded by
// RWMutexes and copying state on save and retrieval so callers can never
// mutate internal buffers. They suit tests, examples and single-process
// prototypes; durable backends (databases, object stores) belong in their own
// packages without changing any calling code.
package store
