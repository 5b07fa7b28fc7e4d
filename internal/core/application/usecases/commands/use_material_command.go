package commands

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUseMaterialCommandIsNotConstructed = errors.New(
	"UseMaterialCommand must be created via NewUseMaterialCommand constructor",
)

// UseMaterialCommand represents a consumption of allocated material. Every
// successful use deducts warehouse stock and leaves exactly one audit record.
type UseMaterialCommand struct { //nolint:recvcheck //using for validation
	materialLineID kernel.UUID
	quantity       decimal.Decimal
	usedBy         kernel.UUID
	batchNumber    string
	notes          string
	usedAt         time.Time

	guard guard.ConstructorGuard
}

// NewUseMaterialCommand creates a command to consume material.
func NewUseMaterialCommand(
	materialLineID kernel.UUID,
	quantity decimal.Decimal,
	usedBy kernel.UUID,
	batchNumber string,
	notes string,
	usedAt time.Time,
) (UseMaterialCommand, error) {
	command := UseMaterialCommand{
		batchNumber: batchNumber,
		notes:       notes,
		usedAt:      usedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMaterialLineID(materialLineID),
		command.setQuantity(quantity),
		command.setUsedBy(usedBy),
	); err != nil {
		return UseMaterialCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UseMaterialCommand) Validate() error {
	return c.guard.Validate(ErrUseMaterialCommandIsNotConstructed)
}

// MaterialLineID returns the target material line's identifier.
func (c UseMaterialCommand) MaterialLineID() kernel.UUID { return c.materialLineID }

// Quantity returns the quantity to consume.
func (c UseMaterialCommand) Quantity() decimal.Decimal { return c.quantity }

// UsedBy returns the worker consuming the material.
func (c UseMaterialCommand) UsedBy() kernel.UUID { return c.usedBy }

// BatchNumber returns the batch reference, if any.
func (c UseMaterialCommand) BatchNumber() string { return c.batchNumber }

// Notes returns the usage notes.
func (c UseMaterialCommand) Notes() string { return c.notes }

// UsedAt returns when the material was consumed.
func (c UseMaterialCommand) UsedAt() time.Time { return c.usedAt }

func (c *UseMaterialCommand) setMaterialLineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.materialLineID = id
	return nil
}

func (c *UseMaterialCommand) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}

func (c *UseMaterialCommand) setUsedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.usedBy = id
	return nil
}
