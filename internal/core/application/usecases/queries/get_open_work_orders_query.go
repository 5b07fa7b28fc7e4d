package queries

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrGetOpenWorkOrdersQueryIsNotConstructed = errors.New(
	"GetOpenWorkOrdersQuery must be created via NewGetOpenWorkOrdersQuery constructor",
)

// GetOpenWorkOrdersQuery retrieves all work orders of a tenant that are not
// in a terminal status, for dashboards and workload monitoring.
type GetOpenWorkOrdersQuery struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOpenWorkOrdersQuery creates a query for a tenant's open work orders.
func NewGetOpenWorkOrdersQuery(tenantID kernel.UUID) (GetOpenWorkOrdersQuery, error) {
	query := GetOpenWorkOrdersQuery{guard: guard.NewConstructorGuard()}
	if err := query.setTenantID(tenantID); err != nil {
		return GetOpenWorkOrdersQuery{}, err
	}
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOpenWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenWorkOrdersQueryIsNotConstructed)
}

// TenantID returns the tenant whose open orders are requested.
func (q GetOpenWorkOrdersQuery) TenantID() kernel.UUID { return q.tenantID }

func (q *GetOpenWorkOrdersQuery) setTenantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.tenantID = id
	return nil
}

// GetOpenWorkOrdersQueryResponse is one open work order in the listing.
type GetOpenWorkOrdersQueryResponse struct {
	ID                 kernel.UUID
	Number             string
	Title              string
	Status             string
	Priority           string
	Urgency            string
	Phase              string
	ProgressPercentage int
	RequestDate        time.Time
	AssignedTo         *kernel.UUID
}
