package stats

import "github.com/odalys-dev/pennybook/internal/ledger"

// FilterAll is the neutral selection for both filters.
const FilterAll = "all"

// TypeFilter selects all transactions or one transaction type.
type TypeFilter string

const (
	TypeFilterAll     TypeFilter = FilterAll
	TypeFilterIncome  TypeFilter = TypeFilter(ledger.TypeIncome)
	TypeFilterExpense TypeFilter = TypeFilter(ledger.TypeExpense)
)

// IsValid checks if the type filter is a known selection.
func (f TypeFilter) IsValid() bool {
	return f == TypeFilterAll || f == TypeFilterIncome || f == TypeFilterExpense
}

// Matches reports whether a transaction type passes the filter.
func (f TypeFilter) Matches(t ledger.Type) bool {
	return f == TypeFilterAll || TypeFilter(t) == f
}

// FilterState holds the current view selections. It is plain view state: not
// persisted, reset to defaults on restart.
type FilterState struct {
	typeFilter     TypeFilter
	categoryFilter string
}

// NewFilterState starts with both filters on "all".
func NewFilterState() *FilterState {
	return &FilterState{
		typeFilter:     TypeFilterAll,
		categoryFilter: FilterAll,
	}
}

// SetTypeFilter changes the type selection. The previous category selection
// loses its relevance, so it resets to "all".
func (s *FilterState) SetTypeFilter(f TypeFilter) {
	s.typeFilter = f
	s.categoryFilter = FilterAll
}

// SetCategoryFilter changes only the category selection.
func (s *FilterState) SetCategoryFilter(category string) {
	s.categoryFilter = category
}

// TypeFilter returns the current type selection.
func (s *FilterState) TypeFilter() TypeFilter {
	return s.typeFilter
}

// CategoryFilter returns the current category selection.
func (s *FilterState) CategoryFilter() string {
	return s.categoryFilter
}

// Apply filters the transactions through the current state.
func (s *FilterState) Apply(txs []ledger.Transaction) []ledger.Transaction {
	return ApplyFilters(txs, s.typeFilter, s.categoryFilter)
}
