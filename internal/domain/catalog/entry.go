package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/velocitynoir/storefront/internal/domain/cart"
)

// Entry is a product as it appears in the browsable collection
type Entry struct {
	cart.Product
	Category string `json:"category"`
	InStock  bool   `json:"inStock"`
}

// Collection returns the full Velocity Noir line. The returned slice is a
// fresh copy; callers may reorder or filter it freely.
func Collection() []Entry {
	return []Entry{
		{
			Product: cart.Product{
				ID:          1,
				Name:        "Velocity Noir - Classic",
				Price:       "$299",
				PriceNumber: decimal.NewFromInt(299),
				Image:       "assets/black-shoe.png",
				Description: "The original design in midnight black with gold accents",
				Features:    []string{"Carbon Fiber Sole", "Premium Leather", "Limited Edition"},
				Gradient:    "from-gray-900 to-black",
			},
			Category: "Classic",
			InStock:  true,
		},
		{
			Product: cart.Product{
				ID:          2,
				Name:        "Velocity Noir - Electric",
				Price:       "$319",
				PriceNumber: decimal.NewFromInt(319),
				Image:       "assets/electric-blue-shoe.png",
				Description: "Electric blue variant with enhanced energy return technology",
				Features:    []string{"Boost+ Technology", "Reflective Details", "Glow Elements"},
				Gradient:    "from-blue-900 to-cyan-600",
			},
			Category: "Electric",
			InStock:  true,
		},
		{
			Product: cart.Product{
				ID:          3,
				Name:        "Velocity Noir - Gold",
				Price:       "$349",
				PriceNumber: decimal.NewFromInt(349),
				Image:       "assets/gold-shoe.png",
				Description: "Luxurious gold edition with hand-finished details",
				Features:    []string{"24k Gold Accents", "Italian Leather", "Collectors Edition"},
				Gradient:    "from-amber-600 to-yellow-500",
			},
			Category: "Premium",
			InStock:  true,
		},
		{
			Product: cart.Product{
				ID:          4,
				Name:        "Velocity Noir - Ghost",
				Price:       "$279",
				PriceNumber: decimal.NewFromInt(279),
				Image:       "assets/ghost-shoe.png",
				Description: "Minimalist white design with transparent elements",
				Features:    []string{"Ghost Protocol", "Translucent Upper", "Clean Aesthetic"},
				Gradient:    "from-gray-100 to-white",
			},
			Category: "Minimalist",
			InStock:  true,
		},
		{
			Product: cart.Product{
				ID:          5,
				Name:        "Velocity Noir - Original",
				Price:       "$329",
				PriceNumber: decimal.NewFromInt(329),
				Image:       "assets/velocity-noir-shoe.png",
				Description: "The flagship model that started it all",
				Features:    []string{"Signature Design", "Performance Grade", "Icon Status"},
				Gradient:    "from-slate-900 to-gray-800",
			},
			Category: "Original",
			InStock:  true,
		},
	}
}

// Categories returns the browsable category facets, "All" first
func Categories() []string {
	return []string{"All", "Classic", "Electric", "Premium", "Minimalist", "Original"}
}

// FindByID returns the collection entry with the given product ID
func FindByID(id int) (Entry, bool) {
	for _, entry := range Collection() {
		if entry.ID == id {
			return entry, true
		}
	}
	return Entry{}, false
}
