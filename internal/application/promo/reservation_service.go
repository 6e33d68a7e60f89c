package promo

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// StoreLocation is a physical store available for fitting appointments.
type StoreLocation struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Locations returns the stores that accept fitting reservations.
func Locations() []StoreLocation {
	return []StoreLocation{
		{
			ID:      "downtown",
			Name:    "Velocity Downtown",
			Address: "123 Fashion St, New York, NY 10001",
			Phone:   "(555) 123-4567",
		},
		{
			ID:      "soho",
			Name:    "Velocity SoHo",
			Address: "456 Style Ave, New York, NY 10012",
			Phone:   "(555) 987-6543",
		},
		{
			ID:      "chicago",
			Name:    "Velocity Chicago Loop",
			Address: "789 Michigan Ave, Chicago, IL 60601",
			Phone:   "(555) 456-7890",
		},
	}
}

// ReservationService books in-store fitting appointments.
type ReservationService struct {
	validate *validator.Validate
	delay    time.Duration
	logger   *zap.Logger
}

// NewReservationService creates a reservation service.
func NewReservationService(delay time.Duration, logger *zap.Logger) *ReservationService {
	return &ReservationService{
		validate: newValidator(),
		delay:    delay,
		logger:   logger,
	}
}

// Book validates the request and confirms the appointment. The
// confirmation echoes the chosen slot.
func (s *ReservationService) Book(ctx context.Context, req ReservationRequest) (*Confirmation, error) {
	if _, err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	if err := simulateProcessing(ctx, s.delay); err != nil {
		return nil, err
	}

	s.logger.Info("reservation booked",
		zap.String("store", req.Store),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
	)

	return &Confirmation{
		Title:       "Reservation confirmed!",
		Description: fmt.Sprintf("Your fitting appointment has been scheduled for %s at %s. We'll send a confirmation email shortly.", req.Date, req.Time),
	}, nil
}
