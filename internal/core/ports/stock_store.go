package ports

import (
	"context"

	"workorders/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// StockStore exposes the warehouse stock levels the deduction trail snapshots
// against. Reads and adjustments happen inside the same transaction as the
// material-line mutation so a deduction record's before/after snapshot always
// matches the stored level.
type StockStore interface {
	// StockLevel returns the current on-hand quantity of a material at a
	// location.
	StockLevel(ctx context.Context, materialID, locationID kernel.UUID) (decimal.Decimal, error)

	// AdjustStock moves the on-hand quantity by delta, negative for a
	// deduction. The store rejects an adjustment that would drive the level
	// negative.
	AdjustStock(ctx context.Context, materialID, locationID kernel.UUID, delta decimal.Decimal) error
}
