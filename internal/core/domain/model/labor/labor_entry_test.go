package labor_test

import (
	"testing"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/labor"
	"workorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntryParams() labor.NewLaborEntryParams {
	return labor.NewLaborEntryParams{
		ID:            kernel.NewUUID(),
		TenantID:      kernel.NewUUID(),
		WorkOrderID:   kernel.NewUUID(),
		AssignmentID:  kernel.NewUUID(),
		WorkerID:      kernel.NewUUID(),
		WorkDate:      time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		RegularHours:  decimal.NewFromInt(8),
		OvertimeHours: decimal.NewFromInt(2),
		HourlyRate:    decimal.NewFromInt(25),
		OvertimeRate:  decimal.RequireFromString("37.5"),
		Description:   "replaced corridor light fixtures",
	}
}

func TestNewLaborEntry(t *testing.T) {
	t.Run("should compute the line cost at construction", func(t *testing.T) {
		entry, err := labor.NewLaborEntry(newTestEntryParams())

		require.NoError(t, err)
		require.NoError(t, entry.Validate())
		// 8*25 + 2*37.5
		assert.Equal(t, "275", entry.TotalCost().String())
		assert.Equal(t, "10", entry.TotalHours().String())
	})

	t.Run("should accept an overtime-only entry", func(t *testing.T) {
		params := newTestEntryParams()
		params.RegularHours = decimal.Zero

		entry, err := labor.NewLaborEntry(params)

		require.NoError(t, err)
		assert.Equal(t, "75", entry.TotalCost().String())
	})

	t.Run("should reject an entry that books no time", func(t *testing.T) {
		params := newTestEntryParams()
		params.RegularHours = decimal.Zero
		params.OvertimeHours = decimal.Zero

		_, err := labor.NewLaborEntry(params)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative hours", func(t *testing.T) {
		params := newTestEntryParams()
		params.OvertimeHours = decimal.NewFromInt(-1)

		_, err := labor.NewLaborEntry(params)

		require.Error(t, err)
	})

	t.Run("should reject an end before the start", func(t *testing.T) {
		params := newTestEntryParams()
		start := time.Date(2025, 3, 12, 16, 0, 0, 0, time.UTC)
		end := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
		params.StartTime = &start
		params.EndTime = &end

		_, err := labor.NewLaborEntry(params)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a score above 10", func(t *testing.T) {
		params := newTestEntryParams()
		params.SafetyScore = decimal.NewFromInt(12)

		_, err := labor.NewLaborEntry(params)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should not validate a zero-value entry", func(t *testing.T) {
		var entry labor.LaborEntry

		assert.ErrorIs(t, entry.Validate(), labor.ErrLaborEntryIsNotConstructed)
	})
}

func TestRestoreLaborEntry(t *testing.T) {
	t.Run("should recompute the cost on restore", func(t *testing.T) {
		entry, err := labor.RestoreLaborEntry(newTestEntryParams())

		require.NoError(t, err)
		assert.Equal(t, "275", entry.TotalCost().String())
	})
}
