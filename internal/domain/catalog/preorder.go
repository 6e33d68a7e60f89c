package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/velocitynoir/storefront/internal/domain/cart"
)

// PreorderEdition is an upcoming release available for preorder only.
// Preorder editions are a separate line from the collection and never
// share IDs with it.
type PreorderEdition struct {
	cart.Product
	OriginalPrice     string `json:"originalPrice"`
	ReleaseDate       string `json:"releaseDate"`
	EstimatedShipping string `json:"estimatedShipping"`
	Discount          string `json:"discount"`
}

// PreorderCollection returns the editions currently open for preorder
func PreorderCollection() []PreorderEdition {
	return []PreorderEdition{
		{
			Product: cart.Product{
				ID:          101,
				Name:        "Velocity Noir - Future Edition",
				Price:       "$399",
				PriceNumber: decimal.NewFromInt(399),
				Image:       "assets/velocity-noir-shoe.png",
				Description: "Next-generation sneaker with AI-powered comfort adjustment",
				Features:    []string{"Smart Fit Technology", "Self-Cleaning Material", "Wireless Charging", "Limited Edition"},
				Gradient:    "from-purple-900 to-indigo-600",
			},
			OriginalPrice:     "$449",
			ReleaseDate:       "2024-12-15",
			EstimatedShipping: "Q1 2025",
			Discount:          "11% OFF",
		},
		{
			Product: cart.Product{
				ID:          102,
				Name:        "Velocity Noir - Carbon Fiber Pro",
				Price:       "$349",
				PriceNumber: decimal.NewFromInt(349),
				Image:       "assets/velocity-noir-shoe.png",
				Description: "Ultra-lightweight professional sports edition",
				Features:    []string{"Carbon Fiber Sole", "Professional Grade", "Tournament Ready", "Aerodynamic Design"},
				Gradient:    "from-gray-900 to-slate-600",
			},
			OriginalPrice:     "$399",
			ReleaseDate:       "2024-11-30",
			EstimatedShipping: "December 2024",
			Discount:          "13% OFF",
		},
	}
}

// FindPreorderEdition returns the preorder edition with the given ID
func FindPreorderEdition(id int) (PreorderEdition, bool) {
	for _, edition := range PreorderCollection() {
		if edition.ID == id {
			return edition, true
		}
	}
	return PreorderEdition{}, false
}
