// Package stats computes derived views over the ledger: totals, filtered
// subsets and per-category breakdowns. Everything here is a pure function.
package stats

import (
	"github.com/odalys-dev/pennybook/internal/ledger"
	"github.com/odalys-dev/pennybook/pkg/money"
)

// OtherBucket collects expenses whose category is unset.
const OtherBucket = "other"

// Totals summarizes a transaction set.
type Totals struct {
	Income  money.Money `json:"income_cents"`
	Expense money.Money `json:"expense_cents"`
	Balance money.Money `json:"balance_cents"`
}

// ComputeTotals sums incomes and expenses; balance is income minus expense.
func ComputeTotals(txs []ledger.Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch tx.Type {
		case ledger.TypeIncome:
			t.Income += tx.Amount
		case ledger.TypeExpense:
			t.Expense += tx.Amount
		}
	}
	t.Balance = t.Income - t.Expense
	return t
}

// ApplyFilters returns the transactions matching the filter state, order
// preserved. The all/all combination is the identity.
func ApplyFilters(txs []ledger.Transaction, typeFilter TypeFilter, categoryFilter string) []ledger.Transaction {
	out := make([]ledger.Transaction, 0, len(txs))
	for _, tx := range txs {
		if !typeFilter.Matches(tx.Type) {
			continue
		}
		if categoryFilter != FilterAll && tx.Category != categoryFilter {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// CategoryBreakdown sums expense amounts per category. Transactions without a
// category land in the "other" bucket; income is ignored.
func CategoryBreakdown(txs []ledger.Transaction) map[string]money.Money {
	out := make(map[string]money.Money)
	for _, tx := range txs {
		if tx.Type != ledger.TypeExpense {
			continue
		}
		cat := tx.Category
		if cat == "" {
			cat = OtherBucket
		}
		out[cat] += tx.Amount
	}
	return out
}

// DistinctCategories lists the category ids appearing in the given sequence
// in first-occurrence order. Callers pass an already type-filtered view to
// drive the category filter chips.
func DistinctCategories(txs []ledger.Transaction) []string {
	seen := make(map[string]struct{}, len(txs))
	out := make([]string, 0, len(txs))
	for _, tx := range txs {
		if tx.Category == "" {
			continue
		}
		if _, ok := seen[tx.Category]; ok {
			continue
		}
		seen[tx.Category] = struct{}{}
		out = append(out, tx.Category)
	}
	return out
}
