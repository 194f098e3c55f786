package core

// ArchiveStore persists serialized thread snapshots keyed by session and
// revision. Implementations should be safe for concurrent use and scope
// revisions by session identifier. Short method names (Save/Get/List/Delete)
// mirror the other store interfaces for consistency.
type ArchiveStore interface {
	Save(sessionID, revisionID string, data []byte) error
	Get(sessionID, revisionID string) ([]byte, error)
	List(sessionID string) ([]string, error)
	Delete(sessionID, revisionID string) error
}
