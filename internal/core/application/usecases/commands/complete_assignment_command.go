package commands

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrCompleteAssignmentCommandIsNotConstructed = errors.New(
	"CompleteAssignmentCommand must be created via NewCompleteAssignmentCommand constructor",
)

// CompleteAssignmentCommand represents the sign-off of an in-progress
// assignment.
type CompleteAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	notes        string
	completedBy  *kernel.UUID
	completedAt  time.Time

	guard guard.ConstructorGuard
}

// NewCompleteAssignmentCommand creates a command to complete an assignment.
// The supervisor signing off is optional; a worker may close their own
// assignment.
func NewCompleteAssignmentCommand(
	assignmentID kernel.UUID,
	notes string,
	completedBy *kernel.UUID,
	completedAt time.Time,
) (CompleteAssignmentCommand, error) {
	command := CompleteAssignmentCommand{
		notes:       notes,
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(assignmentID),
		command.setCompletedBy(completedBy),
	); err != nil {
		return CompleteAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the target assignment's identifier.
func (c CompleteAssignmentCommand) AssignmentID() kernel.UUID { return c.assignmentID }

// Notes returns the completion notes.
func (c CompleteAssignmentCommand) Notes() string { return c.notes }

// CompletedBy returns who signed off the completion, or nil.
func (c CompleteAssignmentCommand) CompletedBy() *kernel.UUID { return c.completedBy }

// CompletedAt returns when the assignment completed.
func (c CompleteAssignmentCommand) CompletedAt() time.Time { return c.completedAt }

func (c *CompleteAssignmentCommand) setAssignmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.assignmentID = id
	return nil
}

func (c *CompleteAssignmentCommand) setCompletedBy(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.completedBy = id
	return nil
}
