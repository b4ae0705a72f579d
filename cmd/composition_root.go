package cmd

import (
	"deliveryconnect/internal/adapters/out/geo"
	"deliveryconnect/internal/adapters/out/postgres"
	"deliveryconnect/internal/adapters/out/redis/locationfeed"
	"deliveryconnect/internal/core/application/usecases/commands"
	"deliveryconnect/internal/core/application/usecases/queries"
	"deliveryconnect/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB           *gorm.DB
	uowFactory       postgres.GormUnitOfWorkFactory
	locationFeed     *locationfeed.Feed
	positionProvider *geo.SimulatedProvider
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB),
		locationFeed:     locationfeed.NewFeed(redisClient),
		positionProvider: geo.NewSimulatedProvider(),
	}
}

func (c *CompositionRoot) LocationFeed() ports.LocationFeed {
	return c.locationFeed
}

func (c *CompositionRoot) PositionProvider() ports.PositionProvider {
	return c.positionProvider
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCollectDeliveryCommandHandler() commands.CollectDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCollectDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateStartTransitCommandHandler() commands.StartTransitCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartTransitCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateSetCourierOnlineCommandHandler() commands.SetCourierOnlineCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCourierOnlineCommandHandler(f, c.locationFeed)
}

func (c *CompositionRoot) CreateRefreshCourierLocationsCommandHandler() commands.RefreshCourierLocationsCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshCourierLocationsCommandHandler(f, c.positionProvider, c.locationFeed)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableCouriersQueryHandler() queries.GetAvailableCouriersQueryHandler {
	return queries.NewGetAvailableCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCommerceDeliveriesQueryHandler() queries.GetCommerceDeliveriesQueryHandler {
	return queries.NewGetCommerceDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierDeliveriesQueryHandler() queries.GetCourierDeliveriesQueryHandler {
	return queries.NewGetCourierDeliveriesQueryHandler(c.gormDB)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
