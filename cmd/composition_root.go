package cmd

import (
	"log/slog"

	"dispatch/internal/adapters/out/geo"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	geocoder   ports.Geocoder
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		geocoder: geo.NewClient(
			configs.GeoServiceURL,
			configs.GeoServiceAPIKey,
			configs.GeoCity,
			configs.GeoCountry,
		),
		logger: logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRunAssignmentsCommandHandler() commands.RunAssignmentsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRunAssignmentsCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePartnerCommandHandler() commands.CreatePartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePartnerCommandHandler() commands.UpdatePartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateRemovePartnerCommandHandler() commands.RemovePartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemovePartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllPartnersQueryHandler() queries.GetAllPartnersQueryHandler {
	return queries.NewGetAllPartnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignmentMetricsQueryHandler() queries.GetAssignmentMetricsQueryHandler {
	return queries.NewGetAssignmentMetricsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB, c.geocoder, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
