package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrStartAssignmentCommandIsNotConstructed = errors.New(
	"StartAssignmentCommand must be created via NewStartAssignmentCommand constructor",
)

// StartAssignmentCommand represents a worker starting on an accepted
// assignment.
type StartAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartAssignmentCommand creates a command to start an assignment.
func NewStartAssignmentCommand(assignmentID kernel.UUID) (StartAssignmentCommand, error) {
	command := StartAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setAssignmentID(assignmentID); err != nil {
		return StartAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrStartAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the target assignment's identifier.
func (c StartAssignmentCommand) AssignmentID() kernel.UUID { return c.assignmentID }

func (c *StartAssignmentCommand) setAssignmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.assignmentID = id
	return nil
}
