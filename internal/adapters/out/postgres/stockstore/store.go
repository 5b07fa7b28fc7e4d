// Package stockstore persists warehouse stock levels. Adjustments run as a
// single guarded UPDATE so the non-negative invariant holds under concurrent
// writers without row locks in application code.
package stockstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockLevelDTO represents one material's on-hand quantity at a location.
type StockLevelDTO struct {
	MaterialID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LocationID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity   decimal.Decimal `gorm:"type:numeric"`
	UpdatedAt  time.Time
}

// TableName overrides GORM's default naming to use "stock_levels".
func (StockLevelDTO) TableName() string {
	return "stock_levels"
}

// GormStockStore implements StockStore using GORM.
type GormStockStore struct {
	db *gorm.DB
}

// NewGormStockStore creates a new GORM stock store.
func NewGormStockStore(db *gorm.DB) *GormStockStore {
	return &GormStockStore{db: db}
}

// StockLevel returns the current on-hand quantity of a material at a
// location. An unknown material/location pair reads as not found rather than
// zero, so a typo'd id cannot silently pass the availability check.
func (s *GormStockStore) StockLevel(
	ctx context.Context,
	materialID, locationID kernel.UUID,
) (decimal.Decimal, error) {
	if err := materialID.Validate(); err != nil {
		return decimal.Zero, err
	}
	if err := locationID.Validate(); err != nil {
		return decimal.Zero, err
	}

	var quantity decimal.Decimal
	err := s.db.WithContext(ctx).Raw(`
		SELECT quantity
		FROM stock_levels
		WHERE material_id = ? AND location_id = ?
	`, materialID.Bytes(), locationID.Bytes()).Row().Scan(&quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, errs.NewObjectNotFoundError("materialID", materialID.String())
		}
		return decimal.Zero, err
	}

	return quantity, nil
}

// AdjustStock moves the on-hand quantity by delta, negative for a deduction.
// The WHERE clause rejects an adjustment that would drive the level negative;
// a zero-row update then surfaces as a quantity constraint violation.
func (s *GormStockStore) AdjustStock(
	ctx context.Context,
	materialID, locationID kernel.UUID,
	delta decimal.Decimal,
) error {
	if err := materialID.Validate(); err != nil {
		return err
	}
	if err := locationID.Validate(); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Exec(`
		UPDATE stock_levels
		SET quantity = quantity + ?, updated_at = NOW()
		WHERE material_id = ? AND location_id = ? AND quantity + ? >= 0
	`, delta, materialID.Bytes(), locationID.Bytes(), delta)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewQuantityConstraintError("adjustStock", delta.Abs().String(),
			"less than requested or level missing")
	}

	return nil
}
