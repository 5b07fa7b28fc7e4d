package commands

import (
	"errors"
	"strings"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrReturnMaterialCommandIsNotConstructed = errors.New(
	"ReturnMaterialCommand must be created via NewReturnMaterialCommand constructor",
)

// ReturnMaterialCommand represents a return of unused allocated material.
type ReturnMaterialCommand struct { //nolint:recvcheck //using for validation
	materialLineID kernel.UUID
	quantity       decimal.Decimal
	reason         string

	guard guard.ConstructorGuard
}

// NewReturnMaterialCommand creates a command to return material. The reason
// is mandatory.
func NewReturnMaterialCommand(materialLineID kernel.UUID, quantity decimal.Decimal, reason string) (ReturnMaterialCommand, error) {
	command := ReturnMaterialCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMaterialLineID(materialLineID),
		command.setQuantity(quantity),
		command.setReason(reason),
	); err != nil {
		return ReturnMaterialCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnMaterialCommand) Validate() error {
	return c.guard.Validate(ErrReturnMaterialCommandIsNotConstructed)
}

// MaterialLineID returns the target material line's identifier.
func (c ReturnMaterialCommand) MaterialLineID() kernel.UUID { return c.materialLineID }

// Quantity returns the quantity to return.
func (c ReturnMaterialCommand) Quantity() decimal.Decimal { return c.quantity }

// Reason returns the return reason.
func (c ReturnMaterialCommand) Reason() string { return c.reason }

func (c *ReturnMaterialCommand) setMaterialLineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.materialLineID = id
	return nil
}

func (c *ReturnMaterialCommand) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}

func (c *ReturnMaterialCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonIsRequired
	}
	c.reason = reason
	return nil
}
