package cmd

import (
	"log/slog"

	"harvest/internal/adapters/out/postgres"
	"harvest/internal/adapters/out/postgres/jobrepo"
	"harvest/internal/adapters/out/postgres/providerrepo"
	"harvest/internal/adapters/out/ristretto"
	"harvest/internal/core/application/usecases/commands"
	"harvest/internal/core/application/usecases/queries"
	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/core/domain/services"
	"harvest/internal/core/ports"

	"gorm.io/gorm"
)

const providerCacheSize = 1024

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    *postgres.GormUnitOfWorkFactory
	providerCache *ristretto.ProviderCache
	estimator     services.CostEstimator
	clock         kernel.Clock
	logger        *slog.Logger
}

// NewCompositionRoot wires the use cases. publisher and predictor may be nil:
// events are then dropped and estimates use the formula.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	predictor ports.CostPredictor,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	providerCache, err := ristretto.NewProviderCache(
		providerrepo.NewGormProviderRepository(gormDB), providerCacheSize, cfg.ProviderCacheTTL,
	)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		providerCache: providerCache,
		estimator:     services.NewCostEstimator(services.SelectStrategy(predictor)),
		clock:         kernel.SystemClock{},
		logger:        logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	return commands.NewCreateJobCommandHandler(c.jobUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAcceptJobCommandHandler() commands.AcceptJobCommandHandler {
	return commands.NewAcceptJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateCompleteJobCommandHandler() commands.CompleteJobCommandHandler {
	return commands.NewCompleteJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateRegisterProviderCommandHandler() commands.RegisterProviderCommandHandler {
	var f commands.ProviderUoWFactory = FuncProviderUoWFactory(func() commands.ProviderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterProviderCommandHandler(f)
}

func (c *CompositionRoot) CreateListOpenJobsQueryHandler() queries.ListOpenJobsQueryHandler {
	return queries.NewListOpenJobsQueryHandler(jobrepo.NewGormJobRepository(c.gormDB, nil))
}

func (c *CompositionRoot) CreateListJobViewsQueryHandler() queries.ListJobViewsQueryHandler {
	return queries.NewListJobViewsQueryHandler(jobrepo.NewGormJobRepository(c.gormDB, nil), c.providerCache)
}

func (c *CompositionRoot) CreateGetJobViewQueryHandler() queries.GetJobViewQueryHandler {
	return queries.NewGetJobViewQueryHandler(jobrepo.NewGormJobRepository(c.gormDB, nil), c.providerCache)
}

func (c *CompositionRoot) CreateEstimateCostQueryHandler() queries.EstimateCostQueryHandler {
	return queries.NewEstimateCostQueryHandler(c.estimator)
}

// CostStrategy reports which strategy was selected at start-up.
func (c *CompositionRoot) CostStrategy() services.StrategyKind {
	return c.estimator.Strategy()
}

// Close releases in-process resources. Connections passed in are owned by the caller.
func (c *CompositionRoot) Close() {
	c.providerCache.Close()
}

func (c *CompositionRoot) jobUoWFactory() commands.JobUoWFactory {
	return FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncProviderUoWFactory func() commands.ProviderUoW

func (f FuncProviderUoWFactory) Create() commands.ProviderUoW {
	return f()
}
