package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odalys-dev/pennybook/internal/ledger"
	"github.com/odalys-dev/pennybook/pkg/money"
)

func TestTypeIsValid(t *testing.T) {
	assert.True(t, ledger.TypeIncome.IsValid())
	assert.True(t, ledger.TypeExpense.IsValid())
	assert.False(t, ledger.Type("transfer").IsValid())
	assert.False(t, ledger.Type("").IsValid())
}

func TestTransactionValidate(t *testing.T) {
	base := ledger.Transaction{
		ID:          1700000000000,
		Description: "Groceries",
		Amount:      money.FromCents(2350),
		Type:        ledger.TypeExpense,
		Category:    "food",
		Date:        "2026-08-01",
	}

	tests := []struct {
		name    string
		mutate  func(*ledger.Transaction)
		wantErr error
	}{
		{"valid", func(tx *ledger.Transaction) {}, nil},
		{"zero id", func(tx *ledger.Transaction) { tx.ID = 0 }, ledger.ErrInvalidID},
		{"whitespace description", func(tx *ledger.Transaction) { tx.Description = " \t" }, ledger.ErrEmptyDescription},
		{"zero amount", func(tx *ledger.Transaction) { tx.Amount = 0 }, ledger.ErrInvalidAmount},
		{"negative amount", func(tx *ledger.Transaction) { tx.Amount = -1 }, ledger.ErrInvalidAmount},
		{"unknown type", func(tx *ledger.Transaction) { tx.Type = "loan" }, ledger.ErrInvalidType},
		{"empty category", func(tx *ledger.Transaction) { tx.Category = "" }, ledger.ErrEmptyCategory},
		{"garbage date", func(tx *ledger.Transaction) { tx.Date = "01/08/2026" }, ledger.ErrInvalidDate},
		{"empty date", func(tx *ledger.Transaction) { tx.Date = "" }, ledger.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := base
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
