// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"workorders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WorkOrderRepoFactory provides access to the work-order repository within a transaction.
	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	// MaterialRepoFactory provides access to the material repository within a transaction.
	MaterialRepoFactory interface {
		MaterialRepository() ports.MaterialRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// ProgressRepoFactory provides access to the progress repository within a transaction.
	ProgressRepoFactory interface {
		ProgressRepository() ports.ProgressRepository
	}

	// StockStoreFactory provides access to the stock store within a transaction.
	StockStoreFactory interface {
		StockStore() ports.StockStore
	}

	// WorkOrderUoW manages transactions for commands that only touch the
	// work-order aggregate.
	WorkOrderUoW interface {
		TxManager
		WorkOrderRepoFactory
	}

	// WorkOrderUoWFactory creates new work-order unit of work instances.
	WorkOrderUoWFactory interface {
		Create() WorkOrderUoW
	}

	// MaterialUoW manages transactions spanning the work order, its material
	// lines, and the warehouse stock. Material consumption and its deduction
	// record commit or roll back together.
	MaterialUoW interface {
		TxManager
		WorkOrderRepoFactory
		MaterialRepoFactory
		StockStoreFactory
	}

	// MaterialUoWFactory creates new material unit of work instances.
	MaterialUoWFactory interface {
		Create() MaterialUoW
	}

	// AssignmentUoW manages transactions spanning the work order and its
	// assignments/labor entries.
	AssignmentUoW interface {
		TxManager
		WorkOrderRepoFactory
		AssignmentRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// ProgressUoW manages transactions spanning the work order and its
	// progress journal: the journal append and the aggregate mirror update
	// are one transaction.
	ProgressUoW interface {
		TxManager
		WorkOrderRepoFactory
		ProgressRepoFactory
	}

	// ProgressUoWFactory creates new progress unit of work instances.
	ProgressUoWFactory interface {
		Create() ProgressUoW
	}

	// CostingUoW manages transactions spanning the work order and both
	// resource ledgers. Used when the aggregate's derived actual cost is
	// recomputed from the ledgers that feed it.
	CostingUoW interface {
		TxManager
		WorkOrderRepoFactory
		MaterialRepoFactory
		AssignmentRepoFactory
	}

	// CostingUoWFactory creates new costing unit of work instances.
	CostingUoWFactory interface {
		Create() CostingUoW
	}
)
