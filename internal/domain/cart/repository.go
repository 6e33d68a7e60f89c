package cart

import "context"

// SnapshotRepository persists the full store state between sessions.
// Load returns (state, true, nil) when a snapshot exists, (zero, false, nil)
// when none was ever saved, and an error when a snapshot exists but cannot
// be read or parsed. Save overwrites unconditionally: last write wins, no
// versioning, no migration.
type SnapshotRepository interface {
	Load(ctx context.Context) (State, bool, error)
	Save(ctx context.Context, state State) error
}
