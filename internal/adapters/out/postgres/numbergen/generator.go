// Package numbergen issues human-readable work-order numbers from a
// per-tenant monthly counter stored in the database.
package numbergen

import (
	"context"
	"fmt"
	"time"

	"workorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CounterDTO represents one tenant's counter for one monthly period.
type CounterDTO struct {
	TenantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Period   string    `gorm:"primaryKey"`
	Counter  int
}

// TableName overrides GORM's default naming to use "work_order_counters".
func (CounterDTO) TableName() string {
	return "work_order_counters"
}

// GormNumberGenerator implements WorkOrderNumberGenerator on top of a
// counters table. The upsert increments atomically, so two concurrent
// creations in the same period never receive the same number.
type GormNumberGenerator struct {
	db *gorm.DB
}

// NewGormNumberGenerator creates a new GORM number generator.
func NewGormNumberGenerator(db *gorm.DB) *GormNumberGenerator {
	return &GormNumberGenerator{db: db}
}

// Next returns the next number of the form WO<yyyyMM><seq> for the tenant in
// the period containing at. The sequence is zero-padded to four digits and
// keeps growing past 9999 without wrapping.
func (g *GormNumberGenerator) Next(
	ctx context.Context,
	tenantID kernel.UUID,
	at time.Time,
) (string, error) {
	if err := tenantID.Validate(); err != nil {
		return "", err
	}

	period := at.UTC().Format("200601")

	var counter int
	err := g.db.WithContext(ctx).Raw(`
		INSERT INTO work_order_counters (tenant_id, period, counter)
		VALUES (?, ?, 1)
		ON CONFLICT (tenant_id, period)
		DO UPDATE SET counter = work_order_counters.counter + 1
		RETURNING counter
	`, tenantID.Bytes(), period).Row().Scan(&counter)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("WO%s%04d", period, counter), nil
}
