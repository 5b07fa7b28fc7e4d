package commands

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrAssignWorkerCommandIsNotConstructed = errors.New(
	"AssignWorkerCommand must be created via NewAssignWorkerCommand constructor",
)

// AssignWorkerCommand represents a request to put a worker on a work order as
// its primary technician. Assigning over an existing primary closes the old
// assignment as REASSIGNED.
type AssignWorkerCommand struct { //nolint:recvcheck //using for validation
	workOrderID    kernel.UUID
	workerID       kernel.UUID
	assignmentType catalog.AssignmentType
	team           string
	assignedAt     time.Time

	guard guard.ConstructorGuard
}

// NewAssignWorkerCommand creates a command to assign a worker.
func NewAssignWorkerCommand(
	workOrderID kernel.UUID,
	workerID kernel.UUID,
	assignmentType catalog.AssignmentType,
	team string,
	assignedAt time.Time,
) (AssignWorkerCommand, error) {
	command := AssignWorkerCommand{
		team:       team,
		assignedAt: assignedAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkOrderID(workOrderID),
		command.setWorkerID(workerID),
		command.setAssignmentType(assignmentType),
	); err != nil {
		return AssignWorkerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAssignWorkerCommandIsNotConstructed)
}

// WorkOrderID returns the target work order's identifier.
func (c AssignWorkerCommand) WorkOrderID() kernel.UUID { return c.workOrderID }

// WorkerID returns the worker to assign.
func (c AssignWorkerCommand) WorkerID() kernel.UUID { return c.workerID }

// AssignmentType returns where the worker comes from.
func (c AssignWorkerCommand) AssignmentType() catalog.AssignmentType { return c.assignmentType }

// Team returns the assigned team, if any.
func (c AssignWorkerCommand) Team() string { return c.team }

// AssignedAt returns when the assignment is made.
func (c AssignWorkerCommand) AssignedAt() time.Time { return c.assignedAt }

func (c *AssignWorkerCommand) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workOrderID = id
	return nil
}

func (c *AssignWorkerCommand) setWorkerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workerID = id
	return nil
}

func (c *AssignWorkerCommand) setAssignmentType(assignmentType catalog.AssignmentType) error {
	if err := assignmentType.Validate(); err != nil {
		return err
	}
	c.assignmentType = assignmentType
	return nil
}
