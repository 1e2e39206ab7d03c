// Package ledger owns the transaction collection and is the only mutation
// path into it.
package ledger

import (
	"strings"
	"time"

	"github.com/odalys-dev/pennybook/pkg/money"
)

// Type classifies a transaction. The sign of an amount is implied by the
// type and never stored.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// IsValid checks if the transaction type is valid
func (t Type) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// DateLayout is the ISO 8601 calendar date layout used for transaction dates.
const DateLayout = "2006-01-02"

// Transaction is a single ledger record. ID and Date are assigned at creation
// and immutable thereafter.
type Transaction struct {
	ID          int64       `json:"id"`
	Description string      `json:"description"`
	Amount      money.Money `json:"amount_cents"`
	Type        Type        `json:"type"`
	Category    string      `json:"category"`
	Tags        []string    `json:"tags,omitempty"`
	Date        string      `json:"date"`
}

// Validate checks the full transaction invariants. Used when accepting whole
// records from the outside (import / replace).
func (t *Transaction) Validate() error {
	if t.ID <= 0 {
		return ErrInvalidID
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !t.Type.IsValid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// Input carries the caller-editable transaction fields for create and update.
type Input struct {
	Description string
	Amount      money.Money
	Type        Type
	Category    string
	Tags        []string
}

// Validate checks the editable fields.
func (in *Input) Validate() error {
	if strings.TrimSpace(in.Description) == "" {
		return ErrEmptyDescription
	}
	if in.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !in.Type.IsValid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(in.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// normalizeTags trims entries, drops the ones empty after trimming and
// deduplicates on first occurrence, preserving order.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
