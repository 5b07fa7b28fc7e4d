package labor_test

import (
	"testing"
	"time"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/labor"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEntry(t *testing.T, workOrderID, workerID kernel.UUID, regular, overtime, rate, overtimeRate string) *labor.LaborEntry {
	t.Helper()
	entry, err := labor.NewLaborEntry(labor.NewLaborEntryParams{
		ID:            kernel.NewUUID(),
		TenantID:      kernel.NewUUID(),
		WorkOrderID:   workOrderID,
		AssignmentID:  kernel.NewUUID(),
		WorkerID:      workerID,
		WorkDate:      time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		RegularHours:  decimal.RequireFromString(regular),
		OvertimeHours: decimal.RequireFromString(overtime),
		HourlyRate:    decimal.RequireFromString(rate),
		OvertimeRate:  decimal.RequireFromString(overtimeRate),
	})
	require.NoError(t, err)
	return entry
}

func TestRollup(t *testing.T) {
	t.Run("should aggregate hours and costs across workers", func(t *testing.T) {
		workOrderID := kernel.NewUUID()
		electrician := kernel.NewUUID()
		contractor := kernel.NewUUID()

		entries := []labor.RollupEntry{
			// 8*25 + 2*37.5 = 275
			{Entry: mustEntry(t, workOrderID, electrician, "8", "2", "25", "37.5"), AssignmentType: catalog.AssignmentInternal},
			// 6*25 = 150
			{Entry: mustEntry(t, workOrderID, electrician, "6", "0", "25", "37.5"), AssignmentType: catalog.AssignmentInternal},
			// 4*40 = 160
			{Entry: mustEntry(t, workOrderID, contractor, "4", "0", "40", "60"), AssignmentType: catalog.AssignmentContractor},
		}

		rollup := labor.Rollup(workOrderID, entries)

		assert.Equal(t, "18", rollup.TotalRegularHours.String())
		assert.Equal(t, "2", rollup.TotalOvertimeHours.String())
		assert.Equal(t, "20", rollup.TotalWorkHours.String())
		assert.Equal(t, "510", rollup.TotalRegularCost.String())
		assert.Equal(t, "75", rollup.TotalOvertimeCost.String())
		assert.Equal(t, "585", rollup.TotalLaborCost.String())
		assert.Equal(t, 1, rollup.WorkerCount)
		assert.Equal(t, 1, rollup.ContractorCount)
		// 585 / 20
		assert.Equal(t, "29.25", rollup.AverageHourlyRate.String())
	})

	t.Run("should split costs by assignment type with percentages", func(t *testing.T) {
		workOrderID := kernel.NewUUID()

		entries := []labor.RollupEntry{
			// 300
			{Entry: mustEntry(t, workOrderID, kernel.NewUUID(), "10", "0", "30", "45"), AssignmentType: catalog.AssignmentInternal},
			// 100
			{Entry: mustEntry(t, workOrderID, kernel.NewUUID(), "4", "0", "25", "37.5"), AssignmentType: catalog.AssignmentExternal},
			// 100
			{Entry: mustEntry(t, workOrderID, kernel.NewUUID(), "2", "0", "50", "75"), AssignmentType: catalog.AssignmentConsultant},
		}

		rollup := labor.Rollup(workOrderID, entries)

		assert.Equal(t, "300", rollup.InternalLaborCost.String())
		assert.Equal(t, "100", rollup.ExternalLaborCost.String())
		assert.Equal(t, "100", rollup.ContractorCost.String())
		assert.Equal(t, "60", rollup.InternalCostPercent.String())
		assert.Equal(t, "20", rollup.ExternalCostPercent.String())
		assert.Equal(t, "20", rollup.ContractorCostPercent.String())
		assert.Equal(t, 2, rollup.WorkerCount)
		assert.Equal(t, 1, rollup.ContractorCount)
	})

	t.Run("should ignore entries of other work orders", func(t *testing.T) {
		workOrderID := kernel.NewUUID()
		otherWorkOrder := kernel.NewUUID()

		entries := []labor.RollupEntry{
			{Entry: mustEntry(t, workOrderID, kernel.NewUUID(), "5", "0", "20", "30"), AssignmentType: catalog.AssignmentInternal},
			{Entry: mustEntry(t, otherWorkOrder, kernel.NewUUID(), "7", "0", "20", "30"), AssignmentType: catalog.AssignmentInternal},
		}

		rollup := labor.Rollup(workOrderID, entries)

		assert.Equal(t, "5", rollup.TotalWorkHours.String())
		assert.Equal(t, "100", rollup.TotalLaborCost.String())
		assert.Equal(t, 1, rollup.WorkerCount)
	})

	t.Run("should produce a zero rollup for an empty entry set", func(t *testing.T) {
		rollup := labor.Rollup(kernel.NewUUID(), nil)

		assert.True(t, rollup.TotalLaborCost.IsZero())
		assert.True(t, rollup.AverageHourlyRate.IsZero())
		assert.True(t, rollup.InternalCostPercent.IsZero())
		assert.Equal(t, 0, rollup.WorkerCount)
		assert.Equal(t, 0, rollup.ContractorCount)
	})

	t.Run("rollup totals match the sum of entry costs", func(t *testing.T) {
		workOrderID := kernel.NewUUID()
		entries := []labor.RollupEntry{
			{Entry: mustEntry(t, workOrderID, kernel.NewUUID(), "7.5", "1.25", "22.4", "33.6"), AssignmentType: catalog.AssignmentInternal},
			{Entry: mustEntry(t, workOrderID, kernel.NewUUID(), "3", "0.5", "31.1", "46.65"), AssignmentType: catalog.AssignmentExternal},
		}
		expected := entries[0].Entry.TotalCost().Add(entries[1].Entry.TotalCost())

		rollup := labor.Rollup(workOrderID, entries)

		assert.True(t, rollup.TotalLaborCost.Equal(expected))
		assert.True(t, rollup.TotalWorkHours.Equal(rollup.TotalRegularHours.Add(rollup.TotalOvertimeHours)))
	})
}
