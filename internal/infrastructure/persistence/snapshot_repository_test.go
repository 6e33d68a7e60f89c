package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/velocitynoir/storefront/internal/domain/cart"
	"github.com/velocitynoir/storefront/internal/infrastructure/config"
)

func sampleState(t *testing.T) cart.State {
	t.Helper()
	product := cart.Product{
		ID:          1,
		Name:        "Velocity Noir - Classic",
		Price:       "$299",
		PriceNumber: decimal.NewFromInt(299),
		Features:    []string{"Carbon Fiber Sole"},
	}
	state := cart.Reduce(cart.NewState(), cart.AddToCart{Product: product})
	state = cart.Reduce(state, cart.AddToCart{Product: product})
	state = cart.Reduce(state, cart.AddToWishlist{Product: product})
	return state
}

func assertStateEqual(t *testing.T, want, got cart.State) {
	t.Helper()
	require.Len(t, got.Items, len(want.Items))
	for i := range want.Items {
		assert.Equal(t, want.Items[i].ID, got.Items[i].ID)
		assert.Equal(t, want.Items[i].Quantity, got.Items[i].Quantity)
		assert.True(t, got.Items[i].PriceNumber.Equal(want.Items[i].PriceNumber))
	}
	assert.Len(t, got.Wishlist, len(want.Wishlist))
	assert.Len(t, got.Orders, len(want.Orders))
	assert.True(t, got.Total.Equal(want.Total))
	assert.Equal(t, want.ItemCount, got.ItemCount)
}

func TestFileSnapshotRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("load without snapshot reports absence", func(t *testing.T) {
		repo, err := NewFileSnapshotRepository(filepath.Join(t.TempDir(), "cartState.json"))
		require.NoError(t, err)

		_, found, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("save then load round trips", func(t *testing.T) {
		repo, err := NewFileSnapshotRepository(filepath.Join(t.TempDir(), "cartState.json"))
		require.NoError(t, err)

		want := sampleState(t)
		require.NoError(t, repo.Save(ctx, want))

		got, found, err := repo.Load(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assertStateEqual(t, want, got)
	})

	t.Run("save overwrites unconditionally", func(t *testing.T) {
		repo, err := NewFileSnapshotRepository(filepath.Join(t.TempDir(), "cartState.json"))
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, sampleState(t)))
		require.NoError(t, repo.Save(ctx, cart.NewState()))

		got, found, err := repo.Load(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.Empty(t, got.Items)
	})

	t.Run("malformed snapshot is an error, not a panic", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cartState.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		repo, err := NewFileSnapshotRepository(path)
		require.NoError(t, err)

		_, _, err = repo.Load(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse")
	})

	t.Run("no temp file is left behind", func(t *testing.T) {
		dir := t.TempDir()
		repo, err := NewFileSnapshotRepository(filepath.Join(dir, "cartState.json"))
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, sampleState(t)))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "cartState.json", entries[0].Name())
	})
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestGormSnapshotRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("load without snapshot reports absence", func(t *testing.T) {
		repo, err := NewGormSnapshotRepository(newTestDB(t), "cartState")
		require.NoError(t, err)

		_, found, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("save then load round trips", func(t *testing.T) {
		repo, err := NewGormSnapshotRepository(newTestDB(t), "cartState")
		require.NoError(t, err)

		want := sampleState(t)
		require.NoError(t, repo.Save(ctx, want))

		got, found, err := repo.Load(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assertStateEqual(t, want, got)
	})

	t.Run("save upserts a single row", func(t *testing.T) {
		db := newTestDB(t)
		repo, err := NewGormSnapshotRepository(db, "cartState")
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, sampleState(t)))
		require.NoError(t, repo.Save(ctx, cart.NewState()))

		var count int64
		require.NoError(t, db.Model(&snapshotRecord{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)

		got, found, err := repo.Load(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.Empty(t, got.Items)
	})

	t.Run("keys are isolated", func(t *testing.T) {
		db := newTestDB(t)
		first, err := NewGormSnapshotRepository(db, "cartState")
		require.NoError(t, err)
		second, err := NewGormSnapshotRepository(db, "otherTab")
		require.NoError(t, err)

		require.NoError(t, first.Save(ctx, sampleState(t)))

		_, found, err := second.Load(ctx)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestNewSnapshotRepositoryFactory(t *testing.T) {
	log := zap.NewNop()

	t.Run("file backend", func(t *testing.T) {
		cfg := config.StorageConfig{Backend: config.BackendFile, Dir: t.TempDir(), Key: "cartState"}
		repo, closer, err := NewSnapshotRepository(cfg, "silent", log)
		require.NoError(t, err)
		require.NotNil(t, repo)
		assert.NoError(t, closer())
		assert.IsType(t, &FileSnapshotRepository{}, repo)
	})

	t.Run("sqlite backend", func(t *testing.T) {
		cfg := config.StorageConfig{Backend: config.BackendSQLite, Dir: t.TempDir(), Key: "cartState"}
		repo, closer, err := NewSnapshotRepository(cfg, "silent", log)
		require.NoError(t, err)
		require.NotNil(t, repo)
		assert.IsType(t, &GormSnapshotRepository{}, repo)
		assert.NoError(t, closer())
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := config.StorageConfig{Backend: "redis", Dir: t.TempDir()}
		_, _, err := NewSnapshotRepository(cfg, "silent", log)
		require.Error(t, err)
	})
}
