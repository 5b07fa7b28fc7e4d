// Package queries contains read-only operations for the CQRS read side.
// Query handlers bypass the domain model and read projections straight from
// the database.
package queries

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetWorkOrderQueryIsNotConstructed = errors.New(
	"GetWorkOrderQuery must be created via NewGetWorkOrderQuery constructor",
)

// GetWorkOrderQuery retrieves a single work order by its identifier.
//
// Example:
//
//	query, err := NewGetWorkOrderQuery(workOrderID)
//	if err != nil {
//	    return err
//	}
//	wo, err := handler.Handle(ctx, query)
type GetWorkOrderQuery struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkOrderQuery creates a query for one work order.
func NewGetWorkOrderQuery(workOrderID kernel.UUID) (GetWorkOrderQuery, error) {
	query := GetWorkOrderQuery{guard: guard.NewConstructorGuard()}
	if err := query.setWorkOrderID(workOrderID); err != nil {
		return GetWorkOrderQuery{}, err
	}
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderQueryIsNotConstructed)
}

// WorkOrderID returns the requested work order's identifier.
func (q GetWorkOrderQuery) WorkOrderID() kernel.UUID { return q.workOrderID }

func (q *GetWorkOrderQuery) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.workOrderID = id
	return nil
}

// GetWorkOrderQueryResponse is the read model of a work order: the header
// fields a dashboard or detail page needs, without the aggregate's behavior.
type GetWorkOrderQueryResponse struct {
	ID                 kernel.UUID
	TenantID           kernel.UUID
	Number             string
	Title              string
	Description        string
	Category           string
	WorkType           string
	Priority           string
	Urgency            string
	Status             string
	ApprovalStatus     string
	Phase              string
	ProgressPercentage int
	RequestDate        time.Time
	ActualStartDate    *time.Time
	ActualEndDate      *time.Time
	AssignedTo         *kernel.UUID
	AssignedTeam       string
	EstimatedCost      decimal.Decimal
	ActualCost         decimal.Decimal
	QualityRating      decimal.Decimal
	Version            int
}
