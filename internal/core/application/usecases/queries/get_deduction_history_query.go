package queries

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDeductionHistoryQueryIsNotConstructed = errors.New(
	"GetDeductionHistoryQuery must be created via NewGetDeductionHistoryQuery constructor",
)

// GetDeductionHistoryQuery retrieves the stock-deduction audit trail of a
// work order, reversals included, ordered by deduction date.
type GetDeductionHistoryQuery struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeductionHistoryQuery creates a query for a work order's deduction
// history.
func NewGetDeductionHistoryQuery(workOrderID kernel.UUID) (GetDeductionHistoryQuery, error) {
	query := GetDeductionHistoryQuery{guard: guard.NewConstructorGuard()}
	if err := query.setWorkOrderID(workOrderID); err != nil {
		return GetDeductionHistoryQuery{}, err
	}
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeductionHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeductionHistoryQueryIsNotConstructed)
}

// WorkOrderID returns the work order whose history is requested.
func (q GetDeductionHistoryQuery) WorkOrderID() kernel.UUID { return q.workOrderID }

func (q *GetDeductionHistoryQuery) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.workOrderID = id
	return nil
}

// GetDeductionHistoryQueryResponse is one deduction record in the audit
// trail. A negative QuantityDeducted marks a reversal.
type GetDeductionHistoryQueryResponse struct {
	ID               kernel.UUID
	MaterialLineID   kernel.UUID
	MaterialID       kernel.UUID
	LocationID       kernel.UUID
	DeductionDate    time.Time
	QuantityDeducted decimal.Decimal
	StockBefore      decimal.Decimal
	StockAfter       decimal.Decimal
	BatchNumber      string
	DeductionType    string
	DeductionReason  string
	IsAutomatic      bool
	Status           string
}
