// Package category resolves category identifiers to display metadata. The
// taxonomy is loaded once at startup from an external source and degrades to a
// built-in fallback when that source is unreachable.
package category

import (
	"github.com/odalys-dev/pennybook/internal/ledger"
)

// Category is one taxonomy entry.
type Category struct {
	ID    string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"emoji"`
}

// Taxonomy maps a transaction type to its ordered category list.
type Taxonomy map[ledger.Type][]Category

// Fallback display metadata for orphaned categories.
const (
	FallbackIcon = "🏷️"
)

// fallbackTaxonomy keeps the system usable when the configuration source is
// unreachable.
var fallbackTaxonomy = Taxonomy{
	ledger.TypeExpense: {
		{ID: "food", Label: "Food", Icon: "🍔"},
		{ID: "transport", Label: "Transport", Icon: "🚌"},
		{ID: "housing", Label: "Housing", Icon: "🏠"},
		{ID: "other", Label: "Other", Icon: "📦"},
	},
	ledger.TypeIncome: {
		{ID: "salary", Label: "Salary", Icon: "💰"},
		{ID: "gifts", Label: "Gifts", Icon: "🎁"},
		{ID: "other", Label: "Other", Icon: "📦"},
	},
}

// FallbackTaxonomy returns a copy of the built-in minimal taxonomy.
func FallbackTaxonomy() Taxonomy {
	out := make(Taxonomy, len(fallbackTaxonomy))
	for typ, cats := range fallbackTaxonomy {
		out[typ] = append([]Category(nil), cats...)
	}
	return out
}
