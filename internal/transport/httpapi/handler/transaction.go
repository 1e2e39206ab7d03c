package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/odalys-dev/pennybook/internal/ledger"
	"github.com/odalys-dev/pennybook/internal/stats"
	"github.com/odalys-dev/pennybook/pkg/money"
)

// TransactionHandler handles transaction CRUD requests.
type TransactionHandler struct {
	store *ledger.Store
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(store *ledger.Store) *TransactionHandler {
	return &TransactionHandler{store: store}
}

// TransactionRequest carries the editable transaction fields. Amount is a
// decimal in major units, e.g. 4.50.
type TransactionRequest struct {
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Type        ledger.Type `json:"type"`
	Category    string      `json:"category"`
	Tags        []string    `json:"tags"`
}

// TransactionsListResponse wraps a transaction list.
type TransactionsListResponse struct {
	Transactions []ledger.Transaction `json:"transactions"`
}

func (r *TransactionRequest) toInput() ledger.Input {
	amount, err := money.ParseDecimal(r.Amount.String())
	if err != nil {
		// Leave it at zero; the store's field validation produces the
		// taxonomy error.
		amount = 0
	}
	return ledger.Input{
		Description: r.Description,
		Amount:      amount,
		Type:        r.Type,
		Category:    r.Category,
		Tags:        r.Tags,
	}
}

// CreateTransaction handles POST /transactions
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := req.toInput()
	tx, err := h.store.Create(r.Context(), in)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, tx)
}

// ListTransactions handles GET /transactions with optional type and category
// filters.
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	typeFilter := stats.TypeFilterAll
	if v := r.URL.Query().Get("type"); v != "" {
		typeFilter = stats.TypeFilter(v)
		if !typeFilter.IsValid() {
			respondError(w, http.StatusBadRequest, "type must be all, income or expense")
			return
		}
	}
	categoryFilter := stats.FilterAll
	if v := r.URL.Query().Get("category"); v != "" {
		categoryFilter = v
	}

	txs := stats.ApplyFilters(h.store.List(), typeFilter, categoryFilter)
	respondJSON(w, http.StatusOK, TransactionsListResponse{Transactions: txs})
}

// UpdateTransaction handles PUT /transactions/{id}
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := req.toInput()
	tx, err := h.store.Update(r.Context(), id, in)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, tx)
}

// DeleteTransaction handles DELETE /transactions/{id}
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		respondAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
