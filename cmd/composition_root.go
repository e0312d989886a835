package cmd

import (
	"tableside/internal/adapters/out/postgres"
	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    menu.Catalog
	stages     order.StageSequence
	bonus      order.BonusPolicy
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, catalog menu.Catalog) (CompositionRoot, error) {
	stages, err := buildStageSequence(config.ThirdStageLabel)
	if err != nil {
		return CompositionRoot{}, err
	}

	bonus, err := buildBonusPolicy(config)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalog,
		stages:     stages,
		bonus:      bonus,
	}, nil
}

// Stages exposes the configured fulfillment sequence.
func (c *CompositionRoot) Stages() order.StageSequence {
	return c.stages
}

// Catalog exposes the loaded menu catalog.
func (c *CompositionRoot) Catalog() menu.Catalog {
	return c.catalog
}

func (c *CompositionRoot) CreateChangeDetector() (services.ChangeDetector, error) {
	return services.NewChangeDetector(c.stages)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderCommandHandler(f, c.stages, c.bonus)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.stages)
}

func (c *CompositionRoot) CreateClearCompletedOrdersCommandHandler() commands.ClearCompletedOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearCompletedOrdersCommandHandler(f, c.stages)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.stages)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDashboardCountsQueryHandler() queries.DashboardCountsQueryHandler {
	return queries.NewDashboardCountsQueryHandler(c.gormDB, c.stages)
}

func (c *CompositionRoot) CreatePollOrderQueryHandler() (queries.PollOrderQueryHandler, error) {
	detector, err := c.CreateChangeDetector()
	if err != nil {
		return queries.PollOrderQueryHandler{}, err
	}
	return queries.NewPollOrderQueryHandler(c.gormDB, c.stages, detector), nil
}

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateListCategoryItemsQueryHandler() queries.ListCategoryItemsQueryHandler {
	return queries.NewListCategoryItemsQueryHandler(c.catalog)
}

// buildStageSequence assembles the fulfillment sequence, honoring the
// configured label for the third stage. The kitchen decides whether a dish
// is "Served" to the table or "Ready" for pickup; the workflow is the same.
func buildStageSequence(thirdStageLabel string) (order.StageSequence, error) {
	if thirdStageLabel == "" {
		return order.DefaultStageSequence(), nil
	}

	return order.NewStageSequence(
		order.Pending, order.Preparing, order.Status(thirdStageLabel), order.Completed)
}

func buildBonusPolicy(config Config) (order.BonusPolicy, error) {
	threshold, err := config.BonusThresholdValue()
	if err != nil {
		return order.BonusPolicy{}, err
	}

	if threshold < 0 {
		return order.DefaultBonusPolicy(), nil
	}

	return order.NewBonusPolicy(decimal.NewFromInt(threshold))
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
