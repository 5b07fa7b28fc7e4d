package cmd

import (
	"workorders/internal/adapters/out/postgres"
	"workorders/internal/adapters/out/postgres/numbergen"
	"workorders/internal/adapters/out/validation"
	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	validator  *validation.PlaygroundValidator
	numbers    *numbergen.GormNumberGenerator
	ids        kernel.RandomIDGenerator
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		validator:  validation.NewPlaygroundValidator(),
		numbers:    numbergen.NewGormNumberGenerator(gormDB),
		ids:        kernel.NewRandomIDGenerator(),
	}
}

func (c *CompositionRoot) workOrderUoWFactory() commands.WorkOrderUoWFactory {
	return FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) materialUoWFactory() commands.MaterialUoWFactory {
	return FuncMaterialUoWFactory(func() commands.MaterialUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) assignmentUoWFactory() commands.AssignmentUoWFactory {
	return FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) progressUoWFactory() commands.ProgressUoWFactory {
	return FuncProgressUoWFactory(func() commands.ProgressUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) costingUoWFactory() commands.CostingUoWFactory {
	return FuncCostingUoWFactory(func() commands.CostingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	return commands.NewCreateWorkOrderCommandHandler(c.workOrderUoWFactory(), c.validator, c.numbers)
}

func (c *CompositionRoot) CreateSubmitWorkOrderCommandHandler() commands.SubmitWorkOrderCommandHandler {
	return commands.NewSubmitWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateApproveWorkOrderCommandHandler() commands.ApproveWorkOrderCommandHandler {
	return commands.NewApproveWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateRejectWorkOrderCommandHandler() commands.RejectWorkOrderCommandHandler {
	return commands.NewRejectWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateStartWorkOrderCommandHandler() commands.StartWorkOrderCommandHandler {
	return commands.NewStartWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreatePauseWorkOrderCommandHandler() commands.PauseWorkOrderCommandHandler {
	return commands.NewPauseWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateResumeWorkOrderCommandHandler() commands.ResumeWorkOrderCommandHandler {
	return commands.NewResumeWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteWorkOrderCommandHandler() commands.CompleteWorkOrderCommandHandler {
	return commands.NewCompleteWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateCancelWorkOrderCommandHandler() commands.CancelWorkOrderCommandHandler {
	return commands.NewCancelWorkOrderCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateEscalateOverdueCommandHandler() commands.EscalateOverdueCommandHandler {
	return commands.NewEscalateOverdueCommandHandler(c.workOrderUoWFactory())
}

func (c *CompositionRoot) CreateReconcileCostsCommandHandler() commands.ReconcileCostsCommandHandler {
	return commands.NewReconcileCostsCommandHandler(c.costingUoWFactory())
}

func (c *CompositionRoot) CreateAddMaterialLineCommandHandler() commands.AddMaterialLineCommandHandler {
	return commands.NewAddMaterialLineCommandHandler(c.materialUoWFactory())
}

func (c *CompositionRoot) CreateAllocateMaterialCommandHandler() commands.AllocateMaterialCommandHandler {
	return commands.NewAllocateMaterialCommandHandler(c.materialUoWFactory())
}

func (c *CompositionRoot) CreateUseMaterialCommandHandler() commands.UseMaterialCommandHandler {
	return commands.NewUseMaterialCommandHandler(c.materialUoWFactory(), c.ids)
}

func (c *CompositionRoot) CreateReturnMaterialCommandHandler() commands.ReturnMaterialCommandHandler {
	return commands.NewReturnMaterialCommandHandler(c.materialUoWFactory())
}

func (c *CompositionRoot) CreateRecordWasteCommandHandler() commands.RecordWasteCommandHandler {
	return commands.NewRecordWasteCommandHandler(c.materialUoWFactory())
}

func (c *CompositionRoot) CreateReverseDeductionCommandHandler() commands.ReverseDeductionCommandHandler {
	return commands.NewReverseDeductionCommandHandler(c.materialUoWFactory(), c.ids)
}

func (c *CompositionRoot) CreatePerformQualityCheckCommandHandler() commands.PerformQualityCheckCommandHandler {
	return commands.NewPerformQualityCheckCommandHandler(c.materialUoWFactory())
}

func (c *CompositionRoot) CreateAssignWorkerCommandHandler() commands.AssignWorkerCommandHandler {
	return commands.NewAssignWorkerCommandHandler(c.assignmentUoWFactory(), c.ids)
}

func (c *CompositionRoot) CreateRespondToAssignmentCommandHandler() commands.RespondToAssignmentCommandHandler {
	return commands.NewRespondToAssignmentCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateStartAssignmentCommandHandler() commands.StartAssignmentCommandHandler {
	return commands.NewStartAssignmentCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateCompleteAssignmentCommandHandler() commands.CompleteAssignmentCommandHandler {
	return commands.NewCompleteAssignmentCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateEvaluateAssignmentCommandHandler() commands.EvaluateAssignmentCommandHandler {
	return commands.NewEvaluateAssignmentCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateRecordLaborEntryCommandHandler() commands.RecordLaborEntryCommandHandler {
	return commands.NewRecordLaborEntryCommandHandler(c.assignmentUoWFactory(), c.ids)
}

func (c *CompositionRoot) CreateRecordProgressCommandHandler() commands.RecordProgressCommandHandler {
	return commands.NewRecordProgressCommandHandler(c.progressUoWFactory(), c.ids)
}

func (c *CompositionRoot) CreateGetWorkOrderQueryHandler() queries.GetWorkOrderQueryHandler {
	return queries.NewGetWorkOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenWorkOrdersQueryHandler() queries.GetOpenWorkOrdersQueryHandler {
	return queries.NewGetOpenWorkOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeductionHistoryQueryHandler() queries.GetDeductionHistoryQueryHandler {
	return queries.NewGetDeductionHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLaborCostRollupQueryHandler() queries.GetLaborCostRollupQueryHandler {
	return queries.NewGetLaborCostRollupQueryHandler(c.gormDB)
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type FuncMaterialUoWFactory func() commands.MaterialUoW

func (f FuncMaterialUoWFactory) Create() commands.MaterialUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncProgressUoWFactory func() commands.ProgressUoW

func (f FuncProgressUoWFactory) Create() commands.ProgressUoW {
	return f()
}

type FuncCostingUoWFactory func() commands.CostingUoW

func (f FuncCostingUoWFactory) Create() commands.CostingUoW {
	return f()
}
