package commands

import (
	"errors"
	"strings"
	"time"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var (
	ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
		"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
	)
	ErrTitleIsRequired = errors.New("title is required")
)

// CreateWorkOrderCommand represents a request to open a new maintenance work
// order in DRAFT status. The human-readable work-order number is issued by
// the handler, not supplied by the caller.
//
// Example:
//
//	cmd, err := NewCreateWorkOrderCommand(id, tenantID, "Lobby lighting repair",
//	    "Replace the failed fixtures", catalog.CategoryCorrective,
//	    catalog.TypeLighting, catalog.PriorityMedium, catalog.UrgencyNormal,
//	    time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid work-order data: %w", err)
//	}
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	tenantID    kernel.UUID
	title       string
	description string
	category    catalog.WorkCategory
	workType    catalog.WorkType
	priority    catalog.WorkPriority
	urgency     catalog.WorkUrgency
	requestDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand creates a command to open a new work order.
// Validates identifiers, the title, and the classification vocabulary.
func NewCreateWorkOrderCommand(
	workOrderID kernel.UUID,
	tenantID kernel.UUID,
	title string,
	description string,
	category catalog.WorkCategory,
	workType catalog.WorkType,
	priority catalog.WorkPriority,
	urgency catalog.WorkUrgency,
	requestDate time.Time,
) (CreateWorkOrderCommand, error) {
	command := CreateWorkOrderCommand{
		description: description,
		requestDate: requestDate,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkOrderID(workOrderID),
		command.setTenantID(tenantID),
		command.setTitle(title),
		command.setClassification(category, workType, priority, urgency),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the identifier for the new work order.
func (c CreateWorkOrderCommand) WorkOrderID() kernel.UUID { return c.workOrderID }

// TenantID returns the owning tenant's identifier.
func (c CreateWorkOrderCommand) TenantID() kernel.UUID { return c.tenantID }

// Title returns the work-order title.
func (c CreateWorkOrderCommand) Title() string { return c.title }

// Description returns the work-order description.
func (c CreateWorkOrderCommand) Description() string { return c.description }

// Category returns the work category.
func (c CreateWorkOrderCommand) Category() catalog.WorkCategory { return c.category }

// WorkType returns the work type.
func (c CreateWorkOrderCommand) WorkType() catalog.WorkType { return c.workType }

// Priority returns the work priority.
func (c CreateWorkOrderCommand) Priority() catalog.WorkPriority { return c.priority }

// Urgency returns the work urgency.
func (c CreateWorkOrderCommand) Urgency() catalog.WorkUrgency { return c.urgency }

// RequestDate returns when the work was requested.
func (c CreateWorkOrderCommand) RequestDate() time.Time { return c.requestDate }

func (c *CreateWorkOrderCommand) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workOrderID = id
	return nil
}

func (c *CreateWorkOrderCommand) setTenantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.tenantID = id
	return nil
}

func (c *CreateWorkOrderCommand) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleIsRequired
	}
	c.title = title
	return nil
}

func (c *CreateWorkOrderCommand) setClassification(
	category catalog.WorkCategory,
	workType catalog.WorkType,
	priority catalog.WorkPriority,
	urgency catalog.WorkUrgency,
) error {
	if err := errors.Join(
		category.Validate(),
		workType.Validate(),
		priority.Validate(),
		urgency.Validate(),
	); err != nil {
		return err
	}
	c.category = category
	c.workType = workType
	c.priority = priority
	c.urgency = urgency
	return nil
}
