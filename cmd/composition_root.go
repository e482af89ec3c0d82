package cmd

import (
	"printshop/internal/adapters/out/postgres"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateStartProcessCommandHandler() commands.StartProcessCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartProcessCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteProcessCommandHandler() commands.CompleteProcessCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteProcessCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateWorkerCommandHandler() commands.CreateWorkerCommandHandler {
	var f commands.WorkerUoWFactory = FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkerCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteWorkerCommandHandler() commands.DeleteWorkerCommandHandler {
	var f commands.WorkerUoWFactory = FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteWorkerCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailQueryHandler() queries.GetOrderDetailQueryHandler {
	return queries.NewGetOrderDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProcessExecutionsQueryHandler() queries.GetProcessExecutionsQueryHandler {
	return queries.NewGetProcessExecutionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkersQueryHandler() queries.GetWorkersQueryHandler {
	return queries.NewGetWorkersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkerCredentialsQueryHandler() queries.GetWorkerCredentialsQueryHandler {
	return queries.NewGetWorkerCredentialsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueExecutionsQueryHandler() queries.GetOverdueExecutionsQueryHandler {
	return queries.NewGetOverdueExecutionsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncWorkerUoWFactory func() commands.WorkerUoW

func (f FuncWorkerUoWFactory) Create() commands.WorkerUoW {
	return f()
}
