package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/velocitynoir/storefront/internal/domain/cart"
)

// FileSnapshotRepository persists the store state as a single JSON document
// on disk, the file-system analog of the browser's local-storage entry.
// Writes go through a temp file and rename so a crash mid-write never leaves
// a truncated snapshot behind.
type FileSnapshotRepository struct {
	path string
}

// NewFileSnapshotRepository creates a repository writing to the given path
func NewFileSnapshotRepository(path string) (*FileSnapshotRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &FileSnapshotRepository{path: path}, nil
}

// Load reads the snapshot. A missing file means no snapshot was ever saved
// and is not an error; an unreadable or malformed file is.
func (r *FileSnapshotRepository) Load(ctx context.Context) (cart.State, bool, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cart.State{}, false, nil
		}
		return cart.State{}, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var state cart.State
	if err := json.Unmarshal(data, &state); err != nil {
		return cart.State{}, false, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return state, true, nil
}

// Save overwrites the snapshot unconditionally (last write wins)
func (r *FileSnapshotRepository) Save(ctx context.Context, state cart.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Ensure FileSnapshotRepository implements SnapshotRepository
var _ cart.SnapshotRepository = (*FileSnapshotRepository)(nil)
