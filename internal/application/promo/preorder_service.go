package promo

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/velocitynoir/storefront/internal/domain/catalog"
	"github.com/velocitynoir/storefront/internal/domain/shared"
)

// PreorderService places preorders against the upcoming-release catalog.
// Preorders never touch the cart; payment is collected at ship time.
type PreorderService struct {
	validate *validator.Validate
	delay    time.Duration
	logger   *zap.Logger
}

// NewPreorderService creates a preorder service.
func NewPreorderService(delay time.Duration, logger *zap.Logger) *PreorderService {
	return &PreorderService{
		validate: newValidator(),
		delay:    delay,
		logger:   logger,
	}
}

// Place validates the request, looks up the edition, and confirms the
// preorder.
func (s *PreorderService) Place(ctx context.Context, req PreorderRequest) (*Confirmation, error) {
	if _, err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	edition, ok := catalog.FindPreorderEdition(req.EditionID)
	if !ok {
		return nil, shared.ErrNotFound
	}

	if err := simulateProcessing(ctx, s.delay); err != nil {
		return nil, err
	}

	s.logger.Info("preorder placed",
		zap.Int("edition_id", edition.ID),
		zap.String("edition", edition.Name),
	)

	return &Confirmation{
		Title:       "Preorder placed!",
		Description: fmt.Sprintf("Your preorder for %s has been confirmed. You'll be charged when the item ships.", edition.Name),
	}, nil
}

// simulateProcessing waits out the configured processing delay unless
// the context is cancelled first.
func simulateProcessing(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
