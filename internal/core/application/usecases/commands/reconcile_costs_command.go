package commands

import (
	"errors"

	"workorders/internal/pkg/guard"
)

var ErrReconcileCostsCommandIsNotConstructed = errors.New(
	"ReconcileCostsCommand must be created via NewReconcileCostsCommand constructor",
)

// ReconcileCostsCommand represents a sweep over the open work orders that
// recomputes each order's actual cost from its material and labor ledgers and
// corrects the stored figure when it has drifted.
type ReconcileCostsCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewReconcileCostsCommand creates a command to reconcile actual costs
// across all open work orders.
func NewReconcileCostsCommand() (ReconcileCostsCommand, error) {
	return ReconcileCostsCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileCostsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileCostsCommandIsNotConstructed)
}
