package insights

// SnapshotStore defines the interface for persisting performance snapshots.
// Snapshots are append-only; there is no update or delete path.
type SnapshotStore interface {
	Save(snap *Snapshot) error
	// Latest returns the owner's most recent snapshot by creation time
	// (falling back to update time, then epoch zero; ties broken stably by
	// insertion order). Returns (nil, nil) when the owner has none.
	Latest(userID string) (*Snapshot, error)
	// History returns all of the owner's snapshots in ascending time order.
	History(userID string) ([]*Snapshot, error)
	Clear()
}
