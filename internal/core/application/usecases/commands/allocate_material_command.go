package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAllocateMaterialCommandIsNotConstructed = errors.New(
		"AllocateMaterialCommand must be created via NewAllocateMaterialCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AllocateMaterialCommand represents a request to reserve a quantity of a
// material line for consumption.
type AllocateMaterialCommand struct { //nolint:recvcheck //using for validation
	materialLineID kernel.UUID
	quantity       decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAllocateMaterialCommand creates a command to allocate material.
func NewAllocateMaterialCommand(materialLineID kernel.UUID, quantity decimal.Decimal) (AllocateMaterialCommand, error) {
	command := AllocateMaterialCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMaterialLineID(materialLineID),
		command.setQuantity(quantity),
	); err != nil {
		return AllocateMaterialCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AllocateMaterialCommand) Validate() error {
	return c.guard.Validate(ErrAllocateMaterialCommandIsNotConstructed)
}

// MaterialLineID returns the target material line's identifier.
func (c AllocateMaterialCommand) MaterialLineID() kernel.UUID { return c.materialLineID }

// Quantity returns the quantity to allocate.
func (c AllocateMaterialCommand) Quantity() decimal.Decimal { return c.quantity }

func (c *AllocateMaterialCommand) setMaterialLineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.materialLineID = id
	return nil
}

func (c *AllocateMaterialCommand) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
