package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrPerformQualityCheckCommandIsNotConstructed = errors.New(
	"PerformQualityCheckCommand must be created via NewPerformQualityCheckCommand constructor",
)

// PerformQualityCheckCommand represents a quality inspection result for a
// delivered material line.
type PerformQualityCheckCommand struct { //nolint:recvcheck //using for validation
	materialLineID kernel.UUID
	passed         bool
	notes          string

	guard guard.ConstructorGuard
}

// NewPerformQualityCheckCommand creates a command to record a quality check.
func NewPerformQualityCheckCommand(materialLineID kernel.UUID, passed bool, notes string) (PerformQualityCheckCommand, error) {
	command := PerformQualityCheckCommand{
		passed: passed,
		notes:  notes,
		guard:  guard.NewConstructorGuard(),
	}

	if err := command.setMaterialLineID(materialLineID); err != nil {
		return PerformQualityCheckCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PerformQualityCheckCommand) Validate() error {
	return c.guard.Validate(ErrPerformQualityCheckCommandIsNotConstructed)
}

// MaterialLineID returns the target material line's identifier.
func (c PerformQualityCheckCommand) MaterialLineID() kernel.UUID { return c.materialLineID }

// Passed reports whether the material passed inspection.
func (c PerformQualityCheckCommand) Passed() bool { return c.passed }

// Notes returns the inspection notes.
func (c PerformQualityCheckCommand) Notes() string { return c.notes }

func (c *PerformQualityCheckCommand) setMaterialLineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.materialLineID = id
	return nil
}
