package cmd

import (
	"log/slog"

	httpadapter "backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/postgres"
	"backoffice/internal/adapters/out/postgres/establishmentrepo"
	redisadapter "backoffice/internal/adapters/out/redis"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/ports"
	"backoffice/internal/jobs"

	goredis "github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	drafts     ports.DeliveryFeeDraftStore
	boards     ports.OrderBoardCache
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, rdb *goredis.Client, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		drafts:     redisadapter.NewDraftStore(rdb, config.DraftTTL),
		boards:     redisadapter.NewBoardCache(rdb, config.OrderBoardTTL),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryFeeUoWFactory() commands.DeliveryFeeUoWFactory {
	return FuncDeliveryFeeUoWFactory(func() commands.DeliveryFeeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateExecuteOrderActionCommandHandler() commands.ExecuteOrderActionCommandHandler {
	return commands.NewExecuteOrderActionCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRefreshOrderBoardsCommandHandler() commands.RefreshOrderBoardsCommandHandler {
	return commands.NewRefreshOrderBoardsCommandHandler(c.orderUoWFactory(), c.boards)
}

func (c *CompositionRoot) CreateEditDeliveryFeeDraftCommandHandler() commands.EditDeliveryFeeDraftCommandHandler {
	return commands.NewEditDeliveryFeeDraftCommandHandler(c.deliveryFeeUoWFactory(), c.drafts)
}

func (c *CompositionRoot) CreateSaveDeliveryFeeConfigCommandHandler() commands.SaveDeliveryFeeConfigCommandHandler {
	return commands.NewSaveDeliveryFeeConfigCommandHandler(c.deliveryFeeUoWFactory(), c.drafts, c.logger)
}

func (c *CompositionRoot) CreateDiscardDeliveryFeeDraftCommandHandler() commands.DiscardDeliveryFeeDraftCommandHandler {
	return commands.NewDiscardDeliveryFeeDraftCommandHandler(c.drafts)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderBoardQueryHandler() queries.GetOrderBoardQueryHandler {
	return queries.NewGetOrderBoardQueryHandler(c.gormDB, c.boards)
}

func (c *CompositionRoot) CreateGetSalesReportQueryHandler() queries.GetSalesReportQueryHandler {
	return queries.NewGetSalesReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryFeeDraftQueryHandler() queries.GetDeliveryFeeDraftQueryHandler {
	return queries.NewGetDeliveryFeeDraftQueryHandler(c.drafts, establishmentrepo.NewGormDeliveryFeeRepository(c.gormDB))
}

func (c *CompositionRoot) CreateQuoteDeliveryFeeQueryHandler() queries.QuoteDeliveryFeeQueryHandler {
	return queries.NewQuoteDeliveryFeeQueryHandler(establishmentrepo.NewGormDeliveryFeeRepository(c.gormDB))
}

// CreateHTTPServer wires every use case exposed over HTTP.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		ExecuteOrderAction:      c.CreateExecuteOrderActionCommandHandler(),
		ChangeOrderStatus:       c.CreateChangeOrderStatusCommandHandler(),
		CancelOrder:             c.CreateCancelOrderCommandHandler(),
		EditDeliveryFeeDraft:    c.CreateEditDeliveryFeeDraftCommandHandler(),
		SaveDeliveryFeeConfig:   c.CreateSaveDeliveryFeeConfigCommandHandler(),
		DiscardDeliveryFeeDraft: c.CreateDiscardDeliveryFeeDraftCommandHandler(),
		ListOrders:              c.CreateListOrdersQueryHandler(),
		GetOrderDetails:         c.CreateGetOrderDetailsQueryHandler(),
		GetOrderBoard:           c.CreateGetOrderBoardQueryHandler(),
		GetSalesReport:          c.CreateGetSalesReportQueryHandler(),
		GetDeliveryFeeDraft:     c.CreateGetDeliveryFeeDraftQueryHandler(),
		QuoteDeliveryFee:        c.CreateQuoteDeliveryFeeQueryHandler(),
	}, c.logger.With("component", "http"))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRefreshOrderBoardsCommandHandler(), c.config.OrderBoardRefresh, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryFeeUoWFactory func() commands.DeliveryFeeUoW

func (f FuncDeliveryFeeUoWFactory) Create() commands.DeliveryFeeUoW {
	return f()
}
