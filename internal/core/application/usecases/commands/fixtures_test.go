package commands_test

import (
	"testing"
	"time"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/labor"
	"workorders/internal/core/domain/model/material"
	"workorders/internal/core/domain/model/workorder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixtureDate = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newDraftWorkOrder(t *testing.T) *workorder.WorkOrder {
	t.Helper()
	aggregate, err := workorder.NewWorkOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"WO2025030001",
		"Lobby lighting repair",
		"Replace the failed fixtures",
		catalog.CategoryCorrective,
		catalog.TypeLighting,
		catalog.PriorityMedium,
		catalog.UrgencyNormal,
		fixtureDate,
	)
	require.NoError(t, err)
	return aggregate
}

func newPendingWorkOrder(t *testing.T) *workorder.WorkOrder {
	t.Helper()
	aggregate := newDraftWorkOrder(t)
	require.NoError(t, aggregate.Submit())
	return aggregate
}

func newAllocatedLine(t *testing.T, aggregate *workorder.WorkOrder) *material.MaterialLine {
	t.Helper()
	line, err := material.NewMaterialLine(
		kernel.NewUUID(),
		aggregate.TenantID(),
		aggregate.ID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Copper pipe 22mm",
		"m",
		decimal.NewFromInt(10),
		decimal.RequireFromString("12.5"),
	)
	require.NoError(t, err)
	require.NoError(t, line.Allocate(decimal.NewFromInt(10)))
	return line
}

func newAssignedAssignment(t *testing.T, aggregate *workorder.WorkOrder) *labor.Assignment {
	t.Helper()
	assignment, err := labor.NewAssignment(
		kernel.NewUUID(),
		aggregate.TenantID(),
		aggregate.ID(),
		kernel.NewUUID(),
		catalog.RolePrimaryTechnician,
		catalog.AssignmentInternal,
		fixtureDate,
	)
	require.NoError(t, err)
	return assignment
}

func newAcceptedAssignment(t *testing.T, aggregate *workorder.WorkOrder) *labor.Assignment {
	t.Helper()
	assignment := newAssignedAssignment(t, aggregate)
	require.NoError(t, assignment.Accept("on it"))
	return assignment
}
