package promo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/velocitynoir/storefront/internal/domain/shared"
)

// bonusRewards are the launch-campaign rewards. Every visitor who
// passes the eligibility check can claim each reward once.
var bonusRewards = []Reward{
	{
		ID:          1,
		Title:       "20% Launch Discount",
		Description: "Exclusive discount on your first Velocity Noir purchase",
		Code:        "LAUNCH20",
	},
	{
		ID:          2,
		Title:       "Free Premium Laces",
		Description: "Complimentary set of premium gold-threaded laces",
		Code:        "FREELACES",
	},
	{
		ID:          3,
		Title:       "VIP Access",
		Description: "Early access to future releases and exclusive drops",
		Code:        "VIPACCESS",
	},
	{
		ID:          4,
		Title:       "Limited Edition Box",
		Description: "Special collector's edition packaging for your order",
		Code:        "LIMITEDBOX",
	},
}

// eligibilityRequest wraps the email for struct validation.
type eligibilityRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// BonusService runs the launch bonus campaign: an email eligibility
// check followed by per-reward claims.
type BonusService struct {
	mu       sync.Mutex
	claimed  map[int]bool
	validate *validator.Validate
	delay    time.Duration
	logger   *zap.Logger
}

// NewBonusService creates a bonus service with no rewards claimed.
func NewBonusService(delay time.Duration, logger *zap.Logger) *BonusService {
	return &BonusService{
		claimed:  make(map[int]bool),
		validate: newValidator(),
		delay:    delay,
		logger:   logger,
	}
}

// Rewards returns the campaign rewards with their claim status.
func (s *BonusService) Rewards() []Reward {
	out := make([]Reward, len(bonusRewards))
	copy(out, bonusRewards)
	return out
}

// CheckEligibility verifies the email and runs the simulated
// eligibility check. Every valid email is eligible.
func (s *BonusService) CheckEligibility(ctx context.Context, email string) (*Confirmation, error) {
	if _, err := validateStruct(s.validate, eligibilityRequest{Email: email}); err != nil {
		return nil, err
	}

	if err := simulateProcessing(ctx, s.delay); err != nil {
		return nil, err
	}

	s.logger.Info("eligibility confirmed", zap.String("email", email))

	return &Confirmation{
		Title:       "Congratulations!",
		Description: "You're eligible for all launch bonuses! Start claiming your rewards.",
	}, nil
}

// Claim marks the reward as claimed and returns its code. Claiming an
// already-claimed reward is a no-op that returns the same code.
func (s *BonusService) Claim(rewardID int) (string, error) {
	reward, ok := findReward(rewardID)
	if !ok {
		return "", shared.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.claimed[rewardID] {
		s.claimed[rewardID] = true
		s.logger.Info("reward claimed",
			zap.Int("reward_id", rewardID),
			zap.String("code", reward.Code),
		)
	}
	return reward.Code, nil
}

// Claimed reports whether the reward has been claimed.
func (s *BonusService) Claimed(rewardID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.claimed[rewardID]
}

// Codes returns every reward as a "Title: CODE" line, the shape used
// by the copy-all action.
func (s *BonusService) Codes() []string {
	out := make([]string, 0, len(bonusRewards))
	for _, reward := range bonusRewards {
		out = append(out, fmt.Sprintf("%s: %s", reward.Title, reward.Code))
	}
	return out
}

func findReward(id int) (Reward, bool) {
	for _, reward := range bonusRewards {
		if reward.ID == id {
			return reward, true
		}
	}
	return Reward{}, false
}
