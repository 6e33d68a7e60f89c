package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/velocitynoir/storefront/internal/application/promo"
	"github.com/velocitynoir/storefront/internal/domain/catalog"
)

// runDemo walks one shopper session through the whole storefront:
// browse, cart, wishlist, checkout, and the three promo flows. The
// resulting snapshot persists, so a second run starts with the order
// history of the first.
func (s *session) runDemo(ctx context.Context) error {
	collection := catalog.Collection()
	s.logger.Info("Browsing collection", zap.Int("products", len(collection)))

	classic := collection[0]
	electric := collection[1]
	ghost := collection[3]

	s.store.AddToCart(ctx, classic.Product)
	s.store.AddToCart(ctx, classic.Product)
	s.store.AddToCart(ctx, electric.Product)
	s.store.UpdateQuantity(ctx, electric.ID, 3)
	s.store.AddToWishlist(ctx, ghost.Product)

	orders, err := s.checkout.PlaceOrder(ctx)
	if err != nil {
		return fmt.Errorf("checkout: %w", err)
	}
	for _, order := range orders {
		s.logger.Info("Order confirmed",
			zap.String("order_id", order.OrderID),
			zap.String("product", order.Name),
			zap.Int("quantity", order.Quantity),
			zap.String("total", order.Total.String()),
		)
	}

	preorder, err := s.preorder.Place(ctx, promo.PreorderRequest{
		EditionID: catalog.PreorderCollection()[0].ID,
		Email:     "demo@velocitynoir.example",
	})
	if err != nil {
		return fmt.Errorf("preorder: %w", err)
	}
	s.logger.Info(preorder.Title, zap.String("description", preorder.Description))

	reservation, err := s.reservation.Book(ctx, promo.ReservationRequest{
		Date:  "2026-09-15",
		Time:  "2:00 PM",
		Store: promo.Locations()[0].ID,
		Name:  "Demo Shopper",
		Email: "demo@velocitynoir.example",
	})
	if err != nil {
		return fmt.Errorf("reservation: %w", err)
	}
	s.logger.Info(reservation.Title, zap.String("description", reservation.Description))

	eligibility, err := s.bonus.CheckEligibility(ctx, "demo@velocitynoir.example")
	if err != nil {
		return fmt.Errorf("bonus eligibility: %w", err)
	}
	s.logger.Info(eligibility.Title, zap.String("description", eligibility.Description))
	for _, reward := range s.bonus.Rewards() {
		code, err := s.bonus.Claim(reward.ID)
		if err != nil {
			return fmt.Errorf("claim reward %d: %w", reward.ID, err)
		}
		s.logger.Info("Reward claimed", zap.String("reward", reward.Title), zap.String("code", code))
	}

	state := s.store.State()
	s.logger.Info("Session complete",
		zap.Int("orders", len(state.Orders)),
		zap.Int("wishlist", len(state.Wishlist)),
		zap.String("cart_total", state.Total.String()),
	)
	return nil
}
