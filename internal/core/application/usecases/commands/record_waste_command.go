package commands

import (
	"errors"
	"strings"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordWasteCommandIsNotConstructed = errors.New(
	"RecordWasteCommand must be created via NewRecordWasteCommand constructor",
)

// RecordWasteCommand represents a write-off of allocated material, e.g.
// breakage or offcuts.
type RecordWasteCommand struct { //nolint:recvcheck //using for validation
	materialLineID kernel.UUID
	quantity       decimal.Decimal
	reason         string

	guard guard.ConstructorGuard
}

// NewRecordWasteCommand creates a command to record material waste. The
// reason is mandatory.
func NewRecordWasteCommand(materialLineID kernel.UUID, quantity decimal.Decimal, reason string) (RecordWasteCommand, error) {
	command := RecordWasteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMaterialLineID(materialLineID),
		command.setQuantity(quantity),
		command.setReason(reason),
	); err != nil {
		return RecordWasteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordWasteCommand) Validate() error {
	return c.guard.Validate(ErrRecordWasteCommandIsNotConstructed)
}

// MaterialLineID returns the target material line's identifier.
func (c RecordWasteCommand) MaterialLineID() kernel.UUID { return c.materialLineID }

// Quantity returns the quantity written off.
func (c RecordWasteCommand) Quantity() decimal.Decimal { return c.quantity }

// Reason returns the waste reason.
func (c RecordWasteCommand) Reason() string { return c.reason }

func (c *RecordWasteCommand) setMaterialLineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.materialLineID = id
	return nil
}

func (c *RecordWasteCommand) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}

func (c *RecordWasteCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonIsRequired
	}
	c.reason = reason
	return nil
}
