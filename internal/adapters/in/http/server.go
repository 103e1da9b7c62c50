// Package http exposes the back office over a JSON API. Every handler binds its
// parameters, builds the command or query through its constructor and maps the
// result to the contract types of dto.go.
package http

import (
	"log/slog"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	ExecuteOrderAction      commands.ExecuteOrderActionCommandHandler
	ChangeOrderStatus       commands.ChangeOrderStatusCommandHandler
	CancelOrder             commands.CancelOrderCommandHandler
	EditDeliveryFeeDraft    commands.EditDeliveryFeeDraftCommandHandler
	SaveDeliveryFeeConfig   commands.SaveDeliveryFeeConfigCommandHandler
	DiscardDeliveryFeeDraft commands.DiscardDeliveryFeeDraftCommandHandler

	ListOrders          queries.ListOrdersQueryHandler
	GetOrderDetails     queries.GetOrderDetailsQueryHandler
	GetOrderBoard       queries.GetOrderBoardQueryHandler
	GetSalesReport      queries.GetSalesReportQueryHandler
	GetDeliveryFeeDraft queries.GetDeliveryFeeDraftQueryHandler
	QuoteDeliveryFee    queries.QuoteDeliveryFeeQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger,
	}
}

// RegisterRoutes mounts every operation of openapi.yml under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	establishment := api.Group("/establishments/:establishmentId")
	establishment.GET("/orders", s.ListOrders)
	establishment.GET("/orders/board", s.GetOrderBoard)
	establishment.GET("/reports/sales", s.GetSalesReport)

	draft := establishment.Group("/delivery-fee/draft")
	draft.GET("", s.GetDeliveryFeeDraft)
	draft.PATCH("", s.ChangeDeliveryFeeSettings)
	draft.DELETE("", s.DiscardDeliveryFeeDraft)
	draft.POST("/cities", s.AddServedCity)
	draft.DELETE("/cities/:city", s.RemoveServedCity)
	draft.POST("/neighborhood-tiers", s.AddNeighborhoodTier)
	draft.POST("/distance-tiers", s.AddDistanceTier)
	draft.POST("/tiers/:tierId/toggle", s.ToggleTier)
	draft.DELETE("/tiers/:tierId", s.RemoveTier)
	draft.POST("/save", s.SaveDeliveryFeeConfig)
	establishment.POST("/delivery-fee/quote", s.QuoteDeliveryFee)

	orders := api.Group("/orders/:orderId")
	orders.GET("", s.GetOrder)
	orders.POST("/actions", s.ExecuteOrderAction)
	orders.POST("/status", s.ChangeOrderStatus)
	orders.POST("/cancel", s.CancelOrder)
}

// bindBody decodes the JSON body only; path and query values are bound separately.
func bindBody(c echo.Context, dest any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dest); err != nil {
		return badRequest(err)
	}
	return nil
}
