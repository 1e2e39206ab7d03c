package category

import (
	"context"

	"github.com/odalys-dev/pennybook/internal/ledger"
	"github.com/odalys-dev/pennybook/pkg/logger"
)

// Resolver answers taxonomy and display-metadata lookups. The taxonomy is
// immutable after construction.
type Resolver struct {
	taxonomy Taxonomy
	logger   *logger.Logger
}

// NewResolver loads the taxonomy from the source once. A nil source or a
// failed fetch degrades to the built-in fallback taxonomy; construction never
// fails.
func NewResolver(ctx context.Context, source Source, log *logger.Logger) *Resolver {
	r := &Resolver{logger: log.WithComponent("category")}

	if source == nil {
		r.taxonomy = FallbackTaxonomy()
		r.logger.Info("no category source configured, using built-in taxonomy")
		return r
	}

	taxonomy, err := source.Fetch(ctx)
	if err != nil {
		r.taxonomy = FallbackTaxonomy()
		r.logger.Warn("category source unavailable, using built-in taxonomy", "error", err)
		return r
	}

	r.taxonomy = taxonomy
	r.logger.Info("category taxonomy loaded",
		"income", len(taxonomy[ledger.TypeIncome]),
		"expense", len(taxonomy[ledger.TypeExpense]))
	return r
}

// CategoriesFor returns the ordered taxonomy for a transaction type. Unknown
// types yield an empty slice.
func (r *Resolver) CategoriesFor(typ ledger.Type) []Category {
	return append([]Category(nil), r.taxonomy[typ]...)
}

// Resolve looks a category id up across both taxonomies. Orphaned ids resolve
// to the fallback glyph with the id as label; Resolve never fails.
func (r *Resolver) Resolve(id string) Category {
	for _, typ := range []ledger.Type{ledger.TypeExpense, ledger.TypeIncome} {
		for _, c := range r.taxonomy[typ] {
			if c.ID == id {
				return c
			}
		}
	}
	return Category{ID: id, Label: id, Icon: FallbackIcon}
}
