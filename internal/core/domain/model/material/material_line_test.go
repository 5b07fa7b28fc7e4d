package material_test

import (
	"testing"
	"time"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/material"
	"workorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLine(t *testing.T, required string, unitCost string) *material.MaterialLine {
	t.Helper()

	line, err := material.NewMaterialLine(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"PVC pipe 50mm",
		"m",
		decimal.RequireFromString(required),
		decimal.RequireFromString(unitCost),
	)
	require.NoError(t, err)
	return line
}

func TestNewMaterialLine(t *testing.T) {
	t.Run("should start required with pending procurement", func(t *testing.T) {
		line := newTestLine(t, "10", "12.50")

		assert.Equal(t, catalog.MaterialRequired, line.Status())
		assert.Equal(t, catalog.ProcurementPending, line.ProcurementStatus())
		assert.True(t, line.AllocatedQuantity().IsZero())
		assert.Equal(t, "125", line.TotalEstimatedCost().String())
		require.NoError(t, line.Validate())
	})

	t.Run("should reject non-positive required quantity", func(t *testing.T) {
		_, err := material.NewMaterialLine(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(),
			"PVC pipe", "m", decimal.Zero, decimal.NewFromInt(1),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMaterialLine_Allocate(t *testing.T) {
	t.Run("allocation reserves stock", func(t *testing.T) {
		line := newTestLine(t, "10", "12.50")

		require.NoError(t, line.Allocate(decimal.NewFromInt(8)))

		assert.Equal(t, catalog.MaterialAllocated, line.Status())
		assert.Equal(t, "8", line.AllocatedQuantity().String())
		assert.Equal(t, "8", line.RemainingQuantity().String())
	})

	t.Run("cannot allocate more than required", func(t *testing.T) {
		line := newTestLine(t, "10", "12.50")

		err := line.Allocate(decimal.NewFromInt(11))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrQuantityConstraintViolated)
		assert.Equal(t, catalog.MaterialRequired, line.Status())
		assert.True(t, line.AllocatedQuantity().IsZero())
	})

	t.Run("cannot allocate zero", func(t *testing.T) {
		line := newTestLine(t, "10", "12.50")

		err := line.Allocate(decimal.Zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMaterialLine_Use(t *testing.T) {
	t.Run("use consumes allocation and recomputes actual cost", func(t *testing.T) {
		line := newTestLine(t, "10", "12.50")
		require.NoError(t, line.Allocate(decimal.NewFromInt(10)))
		worker := kernel.NewUUID()
		at := time.Date(2025, 2, 1, 14, 0, 0, 0, time.UTC)

		require.NoError(t, line.Use(decimal.NewFromInt(4), worker, "first fix", at))

		assert.Equal(t, catalog.MaterialUsed, line.Status())
		assert.Equal(t, "4", line.UsedQuantity().String())
		assert.Equal(t, "6", line.RemainingQuantity().String())
		assert.Equal(t, "50", line.TotalActualCost().String())
		require.NotNil(t, line.UsedBy())
		assert.True(t, worker.IsEqual(*line.UsedBy()))
	})

	t.Run("repeated use keeps accumulating", func(t *testing.T) {
		line := newTestLine(t, "10", "12.50")
		require.NoError(t, line.Allocate(decimal.NewFromInt(10)))
		require.NoError(t, line.Use(decimal.NewFromInt(4), kernel.NewUUID(), "", time.Now()))

		require.NoError(t, line.Use(decimal.NewFromInt(3), kernel.NewUUID(), "", time.Now()))

		assert.Equal(t, "7", line.UsedQuantity().String())
		assert.Equal(t, "87.5", line.TotalActualCost().String())
	})

	t.Run("over-use fails and mutates nothing", func(t *testing.T) {
		line := newTestLine(t, "10", "12.50")
		require.NoError(t, line.Allocate(decimal.NewFromInt(10)))
		require.NoError(t, line.Use(decimal.NewFromInt(4), kernel.NewUUID(), "", time.Now()))

		err := line.Use(decimal.NewFromInt(7), kernel.NewUUID(), "", time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrQuantityConstraintViolated)
		assert.IsType(t, &errs.QuantityConstraintError{}, err)
		assert.Equal(t, "4", line.UsedQuantity().String())
		assert.Equal(t, "50", line.TotalActualCost().String())
	})

	t.Run("cannot use before allocation", func(t *testing.T) {
		line := newTestLine(t, "10", "12.50")

		err := line.Use(decimal.NewFromInt(1), kernel.NewUUID(), "", time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrQuantityConstraintViolated)
	})

	t.Run("revert credits usage back and recomputes the cost", func(t *testing.T) {
		line := newTestLine(t, "10", "12.50")
		require.NoError(t, line.Allocate(decimal.NewFromInt(10)))
		require.NoError(t, line.Use(decimal.NewFromInt(4), kernel.NewUUID(), "", time.Now()))

		require.NoError(t, line.RevertUse(decimal.NewFromInt(3)))

		assert.Equal(t, "1", line.UsedQuantity().String())
		assert.Equal(t, "12.5", line.TotalActualCost().String())
		assert.Equal(t, "9", line.RemainingQuantity().String())
	})

	t.Run("cannot revert more than was used", func(t *testing.T) {
		line := newTestLine(t, "10", "12.50")
		require.NoError(t, line.Allocate(decimal.NewFromInt(10)))
		require.NoError(t, line.Use(decimal.NewFromInt(4), kernel.NewUUID(), "", time.Now()))

		err := line.RevertUse(decimal.NewFromInt(5))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrQuantityConstraintViolated)
		assert.Equal(t, "4", line.UsedQuantity().String())
	})
}

func TestMaterialLine_ReturnAndWaste(t *testing.T) {
	t.Run("return hands back the unconsumed remainder", func(t *testing.T) {
		line := newTestLine(t, "10", "12.50")
		require.NoError(t, line.Allocate(decimal.NewFromInt(10)))
		require.NoError(t, line.Use(decimal.NewFromInt(4), kernel.NewUUID(), "", time.Now()))

		require.NoError(t, line.Return(decimal.NewFromInt(6), "job finished early"))

		assert.Equal(t, catalog.MaterialReturned, line.Status())
		assert.Equal(t, "6", line.ReturnedQuantity().String())
		assert.True(t, line.RemainingQuantity().IsZero())
	})

	t.Run("cannot return more than remaining", func(t *testing.T) {
		line := newTestLine(t, "10", "12.50")
		require.NoError(t, line.Allocate(decimal.NewFromInt(10)))
		require.NoError(t, line.Use(decimal.NewFromInt(4), kernel.NewUUID(), "", time.Now()))

		err := line.Return(decimal.NewFromInt(7), "overshoot")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrQuantityConstraintViolated)
		assert.True(t, line.ReturnedQuantity().IsZero())
	})

	t.Run("waste accumulates without changing status", func(t *testing.T) {
		line := newTestLine(t, "10", "12.50")
		require.NoError(t, line.Allocate(decimal.NewFromInt(10)))
		require.NoError(t, line.Use(decimal.NewFromInt(4), kernel.NewUUID(), "", time.Now()))

		require.NoError(t, line.RecordWaste(decimal.RequireFromString("0.5"), "offcuts"))

		assert.Equal(t, catalog.MaterialUsed, line.Status())
		assert.Equal(t, "0.5", line.WasteQuantity().String())
		assert.Equal(t, "5.5", line.RemainingQuantity().String())
	})

	t.Run("the ledger invariant holds after every operation", func(t *testing.T) {
		line := newTestLine(t, "10", "12.50")
		require.NoError(t, line.Allocate(decimal.NewFromInt(9)))
		require.NoError(t, line.Use(decimal.NewFromInt(5), kernel.NewUUID(), "", time.Now()))
		require.NoError(t, line.RecordWaste(decimal.NewFromInt(1), "breakage"))
		require.NoError(t, line.Return(decimal.NewFromInt(3), "done"))

		consumed := line.UsedQuantity().Add(line.ReturnedQuantity()).Add(line.WasteQuantity())
		assert.True(t, consumed.LessThanOrEqual(line.AllocatedQuantity()))
		assert.True(t, line.AllocatedQuantity().LessThanOrEqual(line.RequiredQuantity()))
		assert.True(t, line.RemainingQuantity().IsZero())
	})
}

func TestMaterialLine_Procurement(t *testing.T) {
	t.Run("delivery check-in via quality pass", func(t *testing.T) {
		line := newTestLine(t, "10", "12.50")
		require.NoError(t, line.RequestProcurement(nil))
		require.Equal(t, catalog.ProcurementRequested, line.ProcurementStatus())

		// approval and ordering happen out-of-band in procurement
		deliveryDate := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
		require.NoError(t, line.MarkDelivered(deliveryDate))
		require.Equal(t, catalog.MaterialDelivered, line.Status())

		require.NoError(t, line.PerformQualityCheck(true, "spec conforms"))

		assert.True(t, line.QualityCheckPassed())
		assert.Equal(t, catalog.ProcurementReceived, line.ProcurementStatus())
	})

	t.Run("failed quality check leaves procurement alone", func(t *testing.T) {
		line := newTestLine(t, "10", "12.50")
		require.NoError(t, line.MarkDelivered(time.Now()))

		require.NoError(t, line.PerformQualityCheck(false, "bent flanges"))

		assert.False(t, line.QualityCheckPassed())
		assert.Equal(t, catalog.ProcurementDelivered, line.ProcurementStatus())
		assert.Equal(t, "bent flanges", line.QualityNotes())
	})
}

func TestMaterialLine_Cancel(t *testing.T) {
	t.Run("open line can be cancelled", func(t *testing.T) {
		line := newTestLine(t, "10", "12.50")

		require.NoError(t, line.Cancel())
		assert.Equal(t, catalog.MaterialCancelled, line.Status())
	})

	t.Run("returned line cannot be cancelled", func(t *testing.T) {
		line := newTestLine(t, "10", "12.50")
		require.NoError(t, line.Allocate(decimal.NewFromInt(5)))
		require.NoError(t, line.Return(decimal.NewFromInt(5), "not needed"))

		err := line.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestRestoreMaterialLine(t *testing.T) {
	t.Run("should restore persisted state", func(t *testing.T) {
		id := kernel.NewUUID()

		line, err := material.RestoreMaterialLine(material.RestoreMaterialLineParams{
			ID:                id,
			TenantID:          kernel.NewUUID(),
			WorkOrderID:       kernel.NewUUID(),
			MaterialID:        kernel.NewUUID(),
			LocationID:        kernel.NewUUID(),
			MaterialName:      "PVC pipe 50mm",
			UnitOfMeasure:     "m",
			RequiredQuantity:  decimal.NewFromInt(10),
			AllocatedQuantity: decimal.NewFromInt(8),
			UsedQuantity:      decimal.NewFromInt(5),
			WasteQuantity:     decimal.NewFromInt(1),
			UnitCost:          decimal.RequireFromString("12.50"),
			TotalActualCost:   decimal.RequireFromString("62.50"),
			Status:            catalog.MaterialUsed,
			ProcurementStatus: catalog.ProcurementReceived,
			Version:           3,
		})

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.True(t, id.IsEqual(line.ID()))
		assert.Equal(t, "2", line.RemainingQuantity().String())
		assert.Equal(t, 3, line.Version())
	})

	t.Run("should reject a broken quantity invariant", func(t *testing.T) {
		_, err := material.RestoreMaterialLine(material.RestoreMaterialLineParams{
			ID:                kernel.NewUUID(),
			TenantID:          kernel.NewUUID(),
			WorkOrderID:       kernel.NewUUID(),
			MaterialID:        kernel.NewUUID(),
			LocationID:        kernel.NewUUID(),
			MaterialName:      "PVC pipe 50mm",
			UnitOfMeasure:     "m",
			RequiredQuantity:  decimal.NewFromInt(10),
			AllocatedQuantity: decimal.NewFromInt(8),
			UsedQuantity:      decimal.NewFromInt(9),
			Status:            catalog.MaterialUsed,
			ProcurementStatus: catalog.ProcurementPending,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrQuantityConstraintViolated)
	})
}
