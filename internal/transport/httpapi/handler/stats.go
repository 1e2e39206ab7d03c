package handler

import (
	"net/http"

	"github.com/odalys-dev/pennybook/internal/ledger"
	"github.com/odalys-dev/pennybook/internal/stats"
	"github.com/odalys-dev/pennybook/pkg/money"
)

// StatsHandler serves the derived views over the ledger.
type StatsHandler struct {
	store *ledger.Store
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(store *ledger.Store) *StatsHandler {
	return &StatsHandler{store: store}
}

// BreakdownResponse maps expense categories to their summed amounts.
type BreakdownResponse struct {
	Breakdown map[string]money.Money `json:"breakdown_cents"`
}

// CategoriesResponse lists distinct category ids in first-occurrence order.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// GetTotals handles GET /stats/totals
func (h *StatsHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, stats.ComputeTotals(h.store.List()))
}

// GetBreakdown handles GET /stats/breakdown
func (h *StatsHandler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, BreakdownResponse{
		Breakdown: stats.CategoryBreakdown(h.store.List()),
	})
}

// GetDistinctCategories handles GET /stats/categories. The optional type
// query narrows the view before collecting category ids, which drives the
// category filter chips.
func (h *StatsHandler) GetDistinctCategories(w http.ResponseWriter, r *http.Request) {
	typeFilter := stats.TypeFilterAll
	if v := r.URL.Query().Get("type"); v != "" {
		typeFilter = stats.TypeFilter(v)
		if !typeFilter.IsValid() {
			respondError(w, http.StatusBadRequest, "type must be all, income or expense")
			return
		}
	}

	filtered := stats.ApplyFilters(h.store.List(), typeFilter, stats.FilterAll)
	respondJSON(w, http.StatusOK, CategoriesResponse{
		Categories: stats.DistinctCategories(filtered),
	})
}
