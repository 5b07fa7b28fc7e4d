package commands

import (
	"errors"
	"time"

	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var ErrEscalateOverdueCommandIsNotConstructed = errors.New(
	"EscalateOverdueCommand must be created via NewEscalateOverdueCommand constructor",
)

// EscalateOverdueCommand represents a sweep over the open work orders that
// raises the priority of every order whose urgency response window has
// elapsed without work starting.
type EscalateOverdueCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewEscalateOverdueCommand creates a command to escalate overdue work
// orders, judged against now.
func NewEscalateOverdueCommand(now time.Time) (EscalateOverdueCommand, error) {
	command := EscalateOverdueCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setNow(now); err != nil {
		return EscalateOverdueCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c EscalateOverdueCommand) Validate() error {
	return c.guard.Validate(ErrEscalateOverdueCommandIsNotConstructed)
}

// Now returns the reference time overdue checks compare against.
func (c EscalateOverdueCommand) Now() time.Time { return c.now }

func (c *EscalateOverdueCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}
	c.now = now
	return nil
}
