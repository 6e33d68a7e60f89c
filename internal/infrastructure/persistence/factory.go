package persistence

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/velocitynoir/storefront/internal/domain/cart"
	"github.com/velocitynoir/storefront/internal/infrastructure/config"
	"github.com/velocitynoir/storefront/internal/infrastructure/logger"
)

// NewSnapshotRepository builds the snapshot repository selected by the
// storage configuration. The returned closer releases backend resources and
// is a no-op for the file backend.
func NewSnapshotRepository(cfg config.StorageConfig, logLevel string, log *zap.Logger) (cart.SnapshotRepository, func() error, error) {
	switch cfg.Backend {
	case config.BackendFile:
		repo, err := NewFileSnapshotRepository(cfg.SnapshotPath())
		if err != nil {
			return nil, nil, err
		}
		return repo, func() error { return nil }, nil

	case config.BackendSQLite:
		gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(logLevel))
		db, err := NewDatabaseWithLogger(cfg.DatabasePath(), gormLog)
		if err != nil {
			return nil, nil, err
		}
		repo, err := NewGormSnapshotRepository(db.DB, cfg.Key)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repo, db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
