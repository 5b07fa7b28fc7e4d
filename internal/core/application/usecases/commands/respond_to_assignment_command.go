package commands

import (
	"errors"
	"strings"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrRespondToAssignmentCommandIsNotConstructed = errors.New(
	"RespondToAssignmentCommand must be created via NewRespondToAssignmentCommand constructor",
)

// RespondToAssignmentCommand represents a worker's answer to an assignment:
// either an acceptance with optional notes, or a decline with a mandatory
// reason.
type RespondToAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	accepted     bool
	notes        string

	guard guard.ConstructorGuard
}

// NewRespondToAssignmentCommand creates a command carrying the worker's
// response. Declines require the notes to carry the reason.
func NewRespondToAssignmentCommand(assignmentID kernel.UUID, accepted bool, notes string) (RespondToAssignmentCommand, error) {
	command := RespondToAssignmentCommand{
		accepted: accepted,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(assignmentID),
		command.setNotes(accepted, notes),
	); err != nil {
		return RespondToAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RespondToAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrRespondToAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the target assignment's identifier.
func (c RespondToAssignmentCommand) AssignmentID() kernel.UUID { return c.assignmentID }

// Accepted reports whether the worker accepted the assignment.
func (c RespondToAssignmentCommand) Accepted() bool { return c.accepted }

// Notes returns the acceptance notes or the decline reason.
func (c RespondToAssignmentCommand) Notes() string { return c.notes }

func (c *RespondToAssignmentCommand) setAssignmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.assignmentID = id
	return nil
}

func (c *RespondToAssignmentCommand) setNotes(accepted bool, notes string) error {
	if !accepted && strings.TrimSpace(notes) == "" {
		return ErrReasonIsRequired
	}
	c.notes = notes
	return nil
}
