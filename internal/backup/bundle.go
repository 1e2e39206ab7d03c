// Package backup builds encrypted export bundles and restores the ledger
// from them.
package backup

import (
	"time"

	"github.com/google/uuid"

	"github.com/odalys-dev/pennybook/internal/category"
	"github.com/odalys-dev/pennybook/internal/ledger"
)

// FormatVersion is the current export bundle format.
const FormatVersion = 1

// Bundle is the complete snapshot encrypted for export: the ledger plus the
// category taxonomy and currency preference it was recorded under.
type Bundle struct {
	FormatVersion  int                  `json:"format_version"`
	BundleID       uuid.UUID            `json:"bundle_id"`
	ExportedAt     time.Time            `json:"exported_at"`
	Transactions   []ledger.Transaction `json:"transactions"`
	Categories     category.Taxonomy    `json:"categories"`
	CurrencyCode   string               `json:"currency_code"`
	CurrencySymbol string               `json:"currency_symbol"`
}
