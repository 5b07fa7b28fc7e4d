package ports

import (
	"context"
	"time"

	"workorders/internal/core/domain/model/kernel"
)

// WorkOrderNumberGenerator issues human-readable work-order numbers of the
// form WO<yyyyMM><seq>, where seq is a zero-padded counter scoped to the
// tenant and the month (WO2025010042 is the 42nd order of January 2025).
type WorkOrderNumberGenerator interface {
	// Next returns the next number for the tenant in the period containing
	// at.
	Next(ctx context.Context, tenantID kernel.UUID, at time.Time) (string, error)
}
