package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/velocitynoir/storefront/internal/domain/cart"
)

// snapshotRecord is the GORM model for a persisted store snapshot.
// One row per snapshot key; the state itself stays an opaque JSON blob so
// the persisted layout is identical across backends.
type snapshotRecord struct {
	Key       string `gorm:"primaryKey;size:64"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (snapshotRecord) TableName() string {
	return "cart_snapshots"
}

// GormSnapshotRepository persists the store state as a keyed blob in SQLite
type GormSnapshotRepository struct {
	db  *gorm.DB
	key string
}

// NewGormSnapshotRepository creates the repository and migrates its table
func NewGormSnapshotRepository(db *gorm.DB, key string) (*GormSnapshotRepository, error) {
	if err := db.AutoMigrate(&snapshotRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot table: %w", err)
	}
	return &GormSnapshotRepository{db: db, key: key}, nil
}

// Load reads the snapshot row for the configured key
func (r *GormSnapshotRepository) Load(ctx context.Context) (cart.State, bool, error) {
	var record snapshotRecord
	err := r.db.WithContext(ctx).First(&record, "key = ?", r.key).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return cart.State{}, false, nil
		}
		return cart.State{}, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var state cart.State
	if err := json.Unmarshal(record.Data, &state); err != nil {
		return cart.State{}, false, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return state, true, nil
}

// Save upserts the snapshot row (last write wins)
func (r *GormSnapshotRepository) Save(ctx context.Context, state cart.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	record := snapshotRecord{
		Key:       r.key,
		Data:      data,
		UpdatedAt: time.Now(),
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Ensure GormSnapshotRepository implements SnapshotRepository
var _ cart.SnapshotRepository = (*GormSnapshotRepository)(nil)
