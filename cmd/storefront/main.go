package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	cartapp "github.com/velocitynoir/storefront/internal/application/cart"
	"github.com/velocitynoir/storefront/internal/application/checkout"
	"github.com/velocitynoir/storefront/internal/application/promo"
	"github.com/velocitynoir/storefront/internal/infrastructure/config"
	"github.com/velocitynoir/storefront/internal/infrastructure/event"
	"github.com/velocitynoir/storefront/internal/infrastructure/logger"
	"github.com/velocitynoir/storefront/internal/infrastructure/persistence"
	"github.com/velocitynoir/storefront/internal/interfaces/notify"
)

// session bundles the store with the services built around it.
type session struct {
	store       *cartapp.Store
	checkout    *checkout.Service
	preorder    *promo.PreorderService
	reservation *promo.ReservationService
	bonus       *promo.BonusService
	logger      *zap.Logger
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting storefront",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("backend", cfg.Storage.Backend),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Snapshot storage selected by config (JSON file or SQLite)
	snapshots, closeStorage, err := persistence.NewSnapshotRepository(cfg.Storage, cfg.Log.Level, log)
	if err != nil {
		log.Error("Failed to initialize snapshot storage", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := closeStorage(); err != nil {
			log.Error("Failed to close snapshot storage", zap.Error(err))
		}
	}()

	// Event bus with the notification side-channel subscribed
	bus := event.NewInMemoryEventBus(log)
	if err := bus.Start(ctx); err != nil {
		log.Error("Failed to start event bus", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := bus.Stop(context.Background()); err != nil {
			log.Error("Failed to stop event bus", zap.Error(err))
		}
	}()

	toaster := notify.NewToaster(notify.NewZapSink(log))
	bus.Subscribe(toaster, toaster.EventTypes()...)

	// Session-scoped store hydrated from the snapshot
	store := cartapp.NewStore(ctx, snapshots, bus, log)
	ctx = cartapp.WithStore(ctx, store)
	ctx, log = logger.WithSessionID(ctx, log, store.SessionID().String())

	sess := &session{
		store:       store,
		checkout:    checkout.NewService(store, cfg.Flow.SimulatedDelay, log),
		preorder:    promo.NewPreorderService(cfg.Flow.SimulatedDelay, log),
		reservation: promo.NewReservationService(cfg.Flow.SimulatedDelay, log),
		bonus:       promo.NewBonusService(cfg.Flow.SimulatedDelay, log),
		logger:      log,
	}

	state := store.State()
	log.Info("Session ready",
		zap.Int("cart_lines", len(state.Items)),
		zap.Int("wishlist", len(state.Wishlist)),
		zap.Int("orders", len(state.Orders)),
		zap.String("total", state.Total.String()),
	)

	if len(os.Args) > 1 && os.Args[1] == "demo" {
		if err := sess.runDemo(ctx); err != nil {
			log.Error("Demo walkthrough failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	<-ctx.Done()
	log.Info("Shutting down storefront")
}
