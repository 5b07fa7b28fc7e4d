package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrEvaluateAssignmentCommandIsNotConstructed = errors.New(
	"EvaluateAssignmentCommand must be created via NewEvaluateAssignmentCommand constructor",
)

// EvaluateAssignmentCommand represents a post-completion evaluation of a
// worker's assignment on the 0-10 scale.
type EvaluateAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID      kernel.UUID
	performanceRating decimal.Decimal
	qualityScore      decimal.Decimal
	timelinessScore   decimal.Decimal

	guard guard.ConstructorGuard
}

// NewEvaluateAssignmentCommand creates a command to evaluate a completed
// assignment. Score ranges are enforced by the assignment itself.
func NewEvaluateAssignmentCommand(
	assignmentID kernel.UUID,
	performanceRating decimal.Decimal,
	qualityScore decimal.Decimal,
	timelinessScore decimal.Decimal,
) (EvaluateAssignmentCommand, error) {
	command := EvaluateAssignmentCommand{
		performanceRating: performanceRating,
		qualityScore:      qualityScore,
		timelinessScore:   timelinessScore,
		guard:             guard.NewConstructorGuard(),
	}

	if err := command.setAssignmentID(assignmentID); err != nil {
		return EvaluateAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c EvaluateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrEvaluateAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the target assignment's identifier.
func (c EvaluateAssignmentCommand) AssignmentID() kernel.UUID { return c.assignmentID }

// PerformanceRating returns the overall performance rating.
func (c EvaluateAssignmentCommand) PerformanceRating() decimal.Decimal { return c.performanceRating }

// QualityScore returns the quality score.
func (c EvaluateAssignmentCommand) QualityScore() decimal.Decimal { return c.qualityScore }

// TimelinessScore returns the timeliness score.
func (c EvaluateAssignmentCommand) TimelinessScore() decimal.Decimal { return c.timelinessScore }

func (c *EvaluateAssignmentCommand) setAssignmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.assignmentID = id
	return nil
}
