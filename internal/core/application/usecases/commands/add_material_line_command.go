package commands

import (
	"errors"
	"strings"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddMaterialLineCommandIsNotConstructed = errors.New(
		"AddMaterialLineCommand must be created via NewAddMaterialLineCommand constructor",
	)
	ErrMaterialNameIsRequired = errors.New("materialName is required")
	ErrUnitOfMeasureIsRequired = errors.New("unitOfMeasure is required")
	ErrRequiredQuantityIsInvalid = errors.New("requiredQuantity must be greater than 0")
)

// AddMaterialLineCommand represents a request to add a material requirement
// to a work order.
type AddMaterialLineCommand struct { //nolint:recvcheck //using for validation
	materialLineID   kernel.UUID
	workOrderID      kernel.UUID
	materialID       kernel.UUID
	locationID       kernel.UUID
	materialName     string
	unitOfMeasure    string
	requiredQuantity decimal.Decimal
	unitCost         decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAddMaterialLineCommand creates a command to add a material line.
func NewAddMaterialLineCommand(
	materialLineID kernel.UUID,
	workOrderID kernel.UUID,
	materialID kernel.UUID,
	locationID kernel.UUID,
	materialName string,
	unitOfMeasure string,
	requiredQuantity decimal.Decimal,
	unitCost decimal.Decimal,
) (AddMaterialLineCommand, error) {
	command := AddMaterialLineCommand{
		unitCost: unitCost,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setIdentifiers(materialLineID, workOrderID, materialID, locationID),
		command.setMaterialName(materialName),
		command.setUnitOfMeasure(unitOfMeasure),
		command.setRequiredQuantity(requiredQuantity),
	); err != nil {
		return AddMaterialLineCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMaterialLineCommand) Validate() error {
	return c.guard.Validate(ErrAddMaterialLineCommandIsNotConstructed)
}

// MaterialLineID returns the identifier for the new line.
func (c AddMaterialLineCommand) MaterialLineID() kernel.UUID { return c.materialLineID }

// WorkOrderID returns the owning work order's identifier.
func (c AddMaterialLineCommand) WorkOrderID() kernel.UUID { return c.workOrderID }

// MaterialID returns the warehouse material reference.
func (c AddMaterialLineCommand) MaterialID() kernel.UUID { return c.materialID }

// LocationID returns the storage location the material draws from.
func (c AddMaterialLineCommand) LocationID() kernel.UUID { return c.locationID }

// MaterialName returns the material's display name.
func (c AddMaterialLineCommand) MaterialName() string { return c.materialName }

// UnitOfMeasure returns the unit the quantities are expressed in.
func (c AddMaterialLineCommand) UnitOfMeasure() string { return c.unitOfMeasure }

// RequiredQuantity returns the planned quantity.
func (c AddMaterialLineCommand) RequiredQuantity() decimal.Decimal { return c.requiredQuantity }

// UnitCost returns the cost per unit.
func (c AddMaterialLineCommand) UnitCost() decimal.Decimal { return c.unitCost }

func (c *AddMaterialLineCommand) setIdentifiers(lineID, workOrderID, materialID, locationID kernel.UUID) error {
	if err := errors.Join(
		lineID.Validate(),
		workOrderID.Validate(),
		materialID.Validate(),
		locationID.Validate(),
	); err != nil {
		return err
	}
	c.materialLineID = lineID
	c.workOrderID = workOrderID
	c.materialID = materialID
	c.locationID = locationID
	return nil
}

func (c *AddMaterialLineCommand) setMaterialName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrMaterialNameIsRequired
	}
	c.materialName = name
	return nil
}

func (c *AddMaterialLineCommand) setUnitOfMeasure(unit string) error {
	if strings.TrimSpace(unit) == "" {
		return ErrUnitOfMeasureIsRequired
	}
	c.unitOfMeasure = unit
	return nil
}

func (c *AddMaterialLineCommand) setRequiredQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return ErrRequiredQuantityIsInvalid
	}
	c.requiredQuantity = quantity
	return nil
}
