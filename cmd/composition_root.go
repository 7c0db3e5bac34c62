package cmd

import (
	"time"

	"amenade/internal/adapters/out/postgres"
	redis_adapter "amenade/internal/adapters/out/redis"
	"amenade/internal/core/application/usecases/commands"
	"amenade/internal/core/application/usecases/queries"
	"amenade/internal/core/domain/services"
	"amenade/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	capacityPolicy services.CapacityPolicy
	redisClient    *redis.Client
	config         Config
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		capacityPolicy: services.NewCapacityPolicy(config.CapacityEnforcement),
		redisClient:    redisClient,
		config:         config,
	}
}

func (c *CompositionRoot) CreateAssignPackageCommandHandler() commands.AssignPackageCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPackageCommandHandler(f, c.capacityPolicy)
}

func (c *CompositionRoot) CreateUnassignPackageCommandHandler() commands.UnassignPackageCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnassignPackageCommandHandler(f, c.capacityPolicy)
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePackageCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTripCommandHandler() commands.CreateTripCommandHandler {
	var f commands.TripUoWFactory = FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTripCommandHandler(f)
}

func (c *CompositionRoot) CreateActivateDueTripsCommandHandler() commands.ActivateDueTripsCommandHandler {
	var f commands.ActivationUoWFactory = FuncActivationUoWFactory(func() commands.ActivationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewActivateDueTripsCommandHandler(f)
}

func (c *CompositionRoot) CreateAvailableTripsQueryHandler() queries.AvailableTripsQueryHandler {
	return queries.NewAvailableTripsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAvailablePackagesQueryHandler() queries.AvailablePackagesQueryHandler {
	return queries.NewAvailablePackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRateLimiter() (ports.RateLimiter, error) {
	return redis_adapter.NewSlidingWindowLimiter(c.redisClient,
		c.config.RateLimitPerMinute, time.Minute)
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

type FuncTripUoWFactory func() commands.TripUoW

func (f FuncTripUoWFactory) Create() commands.TripUoW {
	return f()
}

type FuncActivationUoWFactory func() commands.ActivationUoW

func (f FuncActivationUoWFactory) Create() commands.ActivationUoW {
	return f()
}
