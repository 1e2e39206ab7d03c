package handler

import (
	"net/http"

	"github.com/odalys-dev/pennybook/internal/category"
	"github.com/odalys-dev/pennybook/internal/ledger"
)

// CategoryHandler serves the category taxonomy.
type CategoryHandler struct {
	resolver *category.Resolver
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(resolver *category.Resolver) *CategoryHandler {
	return &CategoryHandler{resolver: resolver}
}

// TaxonomyResponse lists the categories for one transaction type.
type TaxonomyResponse struct {
	Categories []category.Category `json:"categories"`
}

// GetCategories handles GET /categories?type=income|expense
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	typ := ledger.Type(r.URL.Query().Get("type"))
	if !typ.IsValid() {
		respondError(w, http.StatusBadRequest, "type must be income or expense")
		return
	}

	respondJSON(w, http.StatusOK, TaxonomyResponse{
		Categories: h.resolver.CategoriesFor(typ),
	})
}
