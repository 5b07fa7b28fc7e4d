package labor

import (
	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// RollupEntry pairs a labor entry with the sourcing type of its assignment,
// which decides whether its cost counts as internal, external, or contractor
// spend.
type RollupEntry struct {
	Entry          *LaborEntry
	AssignmentType catalog.AssignmentType
}

// CostRollup is the derived labor-cost aggregation for one work order. It is
// a pure function of the entry set (see Rollup) and is safe to recompute at
// any time; by construction TotalLaborCost equals the sum of entry costs and
// TotalWorkHours equals TotalRegularHours + TotalOvertimeHours.
type CostRollup struct {
	WorkOrderID kernel.UUID

	TotalRegularHours  decimal.Decimal
	TotalOvertimeHours decimal.Decimal
	TotalWorkHours     decimal.Decimal

	TotalRegularCost  decimal.Decimal
	TotalOvertimeCost decimal.Decimal
	TotalLaborCost    decimal.Decimal

	// WorkerCount counts distinct internal and external workers;
	// ContractorCount counts distinct contractor and consultant workers.
	WorkerCount     int
	ContractorCount int

	// AverageHourlyRate is TotalLaborCost / TotalWorkHours, two decimals.
	AverageHourlyRate decimal.Decimal

	InternalLaborCost decimal.Decimal
	ExternalLaborCost decimal.Decimal
	ContractorCost    decimal.Decimal

	// Percentage split of TotalLaborCost, two decimals, zero when there is
	// no cost at all.
	InternalCostPercent   decimal.Decimal
	ExternalCostPercent   decimal.Decimal
	ContractorCostPercent decimal.Decimal
}

// Rollup computes the labor-cost aggregation for one work order from its
// entry set. Entries belonging to other work orders are ignored.
func Rollup(workOrderID kernel.UUID, entries []RollupEntry) CostRollup {
	rollup := CostRollup{
		WorkOrderID:           workOrderID,
		TotalRegularHours:     decimal.Zero,
		TotalOvertimeHours:    decimal.Zero,
		TotalWorkHours:        decimal.Zero,
		TotalRegularCost:      decimal.Zero,
		TotalOvertimeCost:     decimal.Zero,
		TotalLaborCost:        decimal.Zero,
		AverageHourlyRate:     decimal.Zero,
		InternalLaborCost:     decimal.Zero,
		ExternalLaborCost:     decimal.Zero,
		ContractorCost:        decimal.Zero,
		InternalCostPercent:   decimal.Zero,
		ExternalCostPercent:   decimal.Zero,
		ContractorCostPercent: decimal.Zero,
	}

	workers := make(map[string]bool)
	contractors := make(map[string]bool)

	for _, re := range entries {
		entry := re.Entry
		if entry == nil || !entry.WorkOrderID().IsEqual(workOrderID) {
			continue
		}

		rollup.TotalRegularHours = rollup.TotalRegularHours.Add(entry.RegularHours())
		rollup.TotalOvertimeHours = rollup.TotalOvertimeHours.Add(entry.OvertimeHours())

		regularCost := entry.RegularHours().Mul(entry.HourlyRate())
		overtimeCost := entry.OvertimeHours().Mul(entry.OvertimeRate())
		rollup.TotalRegularCost = rollup.TotalRegularCost.Add(regularCost)
		rollup.TotalOvertimeCost = rollup.TotalOvertimeCost.Add(overtimeCost)
		rollup.TotalLaborCost = rollup.TotalLaborCost.Add(entry.TotalCost())

		switch re.AssignmentType {
		case catalog.AssignmentInternal:
			rollup.InternalLaborCost = rollup.InternalLaborCost.Add(entry.TotalCost())
			workers[entry.WorkerID().String()] = true
		case catalog.AssignmentExternal:
			rollup.ExternalLaborCost = rollup.ExternalLaborCost.Add(entry.TotalCost())
			workers[entry.WorkerID().String()] = true
		case catalog.AssignmentContractor, catalog.AssignmentConsultant:
			rollup.ContractorCost = rollup.ContractorCost.Add(entry.TotalCost())
			contractors[entry.WorkerID().String()] = true
		}
	}

	rollup.TotalWorkHours = rollup.TotalRegularHours.Add(rollup.TotalOvertimeHours)
	rollup.WorkerCount = len(workers)
	rollup.ContractorCount = len(contractors)

	if rollup.TotalWorkHours.IsPositive() {
		rollup.AverageHourlyRate = rollup.TotalLaborCost.DivRound(rollup.TotalWorkHours, 2)
	}
	if rollup.TotalLaborCost.IsPositive() {
		rollup.InternalCostPercent = rollup.InternalLaborCost.Mul(oneHundred).DivRound(rollup.TotalLaborCost, 2)
		rollup.ExternalCostPercent = rollup.ExternalLaborCost.Mul(oneHundred).DivRound(rollup.TotalLaborCost, 2)
		rollup.ContractorCostPercent = rollup.ContractorCost.Mul(oneHundred).DivRound(rollup.TotalLaborCost, 2)
	}

	return rollup
}
