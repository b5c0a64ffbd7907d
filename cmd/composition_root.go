package cmd

import (
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires command and query handlers over one database handle.
// Each service binary creates the handlers it serves.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// Order service command handlers.

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler(
	reservation ports.AgentReservation,
) commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, reservation)
}

func (c *CompositionRoot) CreateRateOrderCommandHandler() commands.RateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	return commands.NewCreateRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRestaurantCommandHandler() commands.UpdateRestaurantCommandHandler {
	return commands.NewUpdateRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	return commands.NewAddMenuItemCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.restaurantUoWFactory())
}

// Agent service command handlers.

func (c *CompositionRoot) CreateCreateAgentCommandHandler() commands.CreateAgentCommandHandler {
	return commands.NewCreateAgentCommandHandler(c.agentUoWFactory())
}

func (c *CompositionRoot) CreateReserveAgentCommandHandler() commands.ReserveAgentCommandHandler {
	return commands.NewReserveAgentCommandHandler(c.agentUoWFactory())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler(
	orders ports.OrderStore,
) commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.agentUoWFactory(), orders)
}

// Query handlers.

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantQueryHandler() queries.GetRestaurantQueryHandler {
	return queries.NewGetRestaurantQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableRestaurantsQueryHandler() queries.GetAvailableRestaurantsQueryHandler {
	return queries.NewGetAvailableRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentQueryHandler() queries.GetAgentQueryHandler {
	return queries.NewGetAgentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStuckOrdersQueryHandler() queries.GetStuckOrdersQueryHandler {
	return queries.NewGetStuckOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAcceptanceFailureCountsQueryHandler() queries.GetAcceptanceFailureCountsQueryHandler {
	return queries.NewGetAcceptanceFailureCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) agentUoWFactory() commands.AgentUoWFactory {
	return FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) restaurantUoWFactory() commands.RestaurantUoWFactory {
	return FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
