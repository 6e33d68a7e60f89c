package catalog

import (
	"sort"
	"strings"
)

// SortKey selects the collection ordering
type SortKey string

const (
	SortFeatured     SortKey = "featured"
	SortPriceLowHigh SortKey = "price-low-high"
	SortPriceHighLow SortKey = "price-high-low"
	SortNewest       SortKey = "newest"
)

// Search returns entries whose name or description contains the term,
// case-insensitively. An empty term matches everything.
func Search(entries []Entry, term string) []Entry {
	if term == "" {
		return entries
	}
	needle := strings.ToLower(term)
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), needle) ||
			strings.Contains(strings.ToLower(entry.Description), needle) {
			out = append(out, entry)
		}
	}
	return out
}

// FilterByCategory returns entries in the given category. "All" and the
// empty string match everything.
func FilterByCategory(entries []Entry, category string) []Entry {
	if category == "" || category == "All" {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Category == category {
			out = append(out, entry)
		}
	}
	return out
}

// SortBy returns a copy of entries ordered by the given key. SortFeatured
// and unknown keys preserve the incoming order.
func SortBy(entries []Entry, key SortKey) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	switch key {
	case SortPriceLowHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PriceNumber.LessThan(out[j].PriceNumber)
		})
	case SortPriceHighLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[j].PriceNumber.LessThan(out[i].PriceNumber)
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ID > out[j].ID
		})
	}
	return out
}
