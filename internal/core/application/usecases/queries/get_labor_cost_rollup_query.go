package queries

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetLaborCostRollupQueryIsNotConstructed = errors.New(
	"GetLaborCostRollupQuery must be created via NewGetLaborCostRollupQuery constructor",
)

// GetLaborCostRollupQuery retrieves the aggregated labor cost picture of a
// work order: hours and cost totals, workforce counts, and the internal /
// external / contractor split.
type GetLaborCostRollupQuery struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLaborCostRollupQuery creates a query for a work order's labor cost
// rollup.
func NewGetLaborCostRollupQuery(workOrderID kernel.UUID) (GetLaborCostRollupQuery, error) {
	query := GetLaborCostRollupQuery{guard: guard.NewConstructorGuard()}
	if err := query.setWorkOrderID(workOrderID); err != nil {
		return GetLaborCostRollupQuery{}, err
	}
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLaborCostRollupQuery) Validate() error {
	return q.guard.Validate(ErrGetLaborCostRollupQueryIsNotConstructed)
}

// WorkOrderID returns the work order whose rollup is requested.
func (q GetLaborCostRollupQuery) WorkOrderID() kernel.UUID { return q.workOrderID }

func (q *GetLaborCostRollupQuery) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.workOrderID = id
	return nil
}

// GetLaborCostRollupQueryResponse carries the rollup figures. Percentages are
// of the total labor cost and are rounded to two decimal places.
type GetLaborCostRollupQueryResponse struct {
	WorkOrderID kernel.UUID

	TotalRegularHours  decimal.Decimal
	TotalOvertimeHours decimal.Decimal
	TotalWorkHours     decimal.Decimal

	TotalRegularCost  decimal.Decimal
	TotalOvertimeCost decimal.Decimal
	TotalLaborCost    decimal.Decimal

	WorkerCount     int
	ContractorCount int

	AverageHourlyRate decimal.Decimal

	InternalLaborCost decimal.Decimal
	ExternalLaborCost decimal.Decimal
	ContractorCost    decimal.Decimal

	InternalCostPercent   decimal.Decimal
	ExternalCostPercent   decimal.Decimal
	ContractorCostPercent decimal.Decimal
}
