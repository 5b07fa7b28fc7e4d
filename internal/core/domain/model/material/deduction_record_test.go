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

func newTestDeductionParams() material.NewDeductionRecordParams {
	return material.NewDeductionRecordParams{
		ID:               kernel.NewUUID(),
		TenantID:         kernel.NewUUID(),
		WorkOrderID:      kernel.NewUUID(),
		MaterialLineID:   kernel.NewUUID(),
		MaterialID:       kernel.NewUUID(),
		LocationID:       kernel.NewUUID(),
		DeductionDate:    time.Date(2025, 2, 1, 14, 0, 0, 0, time.UTC),
		QuantityDeducted: decimal.NewFromInt(4),
		StockBefore:      decimal.NewFromInt(20),
		StockAfter:       decimal.NewFromInt(16),
		BatchNumber:      "B-2025-017",
		DeductionType:    catalog.DeductionWorkOrder,
		IsAutomatic:      true,
		Status:           catalog.DeductionCompleted,
	}
}

func TestNewDeductionRecord(t *testing.T) {
	t.Run("should capture a balanced stock snapshot", func(t *testing.T) {
		record, err := material.NewDeductionRecord(newTestDeductionParams())

		require.NoError(t, err)
		require.NoError(t, record.Validate())
		assert.Equal(t, "4", record.QuantityDeducted().String())
		assert.Equal(t, "20", record.StockBefore().String())
		assert.Equal(t, "16", record.StockAfter().String())
		assert.True(t, record.IsAutomatic())
		assert.False(t, record.IsReversal())
	})

	t.Run("should reject an unbalanced snapshot", func(t *testing.T) {
		params := newTestDeductionParams()
		params.StockAfter = decimal.NewFromInt(15)

		_, err := material.NewDeductionRecord(params)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a zero quantity", func(t *testing.T) {
		params := newTestDeductionParams()
		params.QuantityDeducted = decimal.Zero
		params.StockAfter = params.StockBefore

		_, err := material.NewDeductionRecord(params)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative stock levels", func(t *testing.T) {
		params := newTestDeductionParams()
		params.StockBefore = decimal.NewFromInt(3)
		params.StockAfter = decimal.NewFromInt(-1)

		_, err := material.NewDeductionRecord(params)

		require.Error(t, err)
	})
}

func TestDeductionRecord_Reverse(t *testing.T) {
	t.Run("reversal compensates with the negated quantity", func(t *testing.T) {
		record, err := material.NewDeductionRecord(newTestDeductionParams())
		require.NoError(t, err)
		at := time.Date(2025, 2, 2, 9, 0, 0, 0, time.UTC)

		reversal, err := record.Reverse(kernel.NewUUID(), decimal.NewFromInt(16), "entered twice", nil, at)

		require.NoError(t, err)
		assert.True(t, reversal.IsReversal())
		assert.Equal(t, "-4", reversal.QuantityDeducted().String())
		assert.Equal(t, "16", reversal.StockBefore().String())
		assert.Equal(t, "20", reversal.StockAfter().String())
		assert.Equal(t, catalog.DeductionAdjustment, reversal.DeductionType())
		assert.False(t, reversal.IsAutomatic())
		assert.Equal(t, "entered twice", reversal.DeductionReason())

		// original keeps its snapshot, only the status flips
		require.NoError(t, record.MarkReversed())
		assert.Equal(t, catalog.DeductionReversed, record.Status())
		assert.Equal(t, "4", record.QuantityDeducted().String())
	})

	t.Run("a reversal cannot be reversed", func(t *testing.T) {
		record, err := material.NewDeductionRecord(newTestDeductionParams())
		require.NoError(t, err)
		reversal, err := record.Reverse(kernel.NewUUID(), decimal.NewFromInt(16), "dup", nil, time.Now())
		require.NoError(t, err)

		_, err = reversal.Reverse(kernel.NewUUID(), decimal.NewFromInt(20), "again", nil, time.Now())
		require.Error(t, err)

		err = reversal.MarkReversed()
		require.Error(t, err)
	})

	t.Run("an already reversed record cannot be reversed twice", func(t *testing.T) {
		record, err := material.NewDeductionRecord(newTestDeductionParams())
		require.NoError(t, err)
		require.NoError(t, record.MarkReversed())

		_, err = record.Reverse(kernel.NewUUID(), decimal.NewFromInt(16), "dup", nil, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
