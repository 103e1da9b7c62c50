package http

import (
	"net/http"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/establishments/{establishmentId}/orders.
func (s *Server) ListOrders(c echo.Context) error {
	establishmentID, err := pathUUID(c, "establishmentId")
	if err != nil {
		return s.fail(c, err)
	}
	if _, err = actorID(c); err != nil {
		return s.fail(c, err)
	}

	status := order.Unknown
	code, err := queryString(c, "status")
	if err != nil {
		return s.fail(c, err)
	}
	if code != "" {
		if status, err = order.StatusFromCode(code); err != nil {
			return s.fail(c, err)
		}
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListOrdersQuery(establishmentID, status, limit)
	if err != nil {
		return s.fail(c, err)
	}
	rows, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]OrderSummary, len(rows))
	for i, row := range rows {
		response[i] = toOrderSummary(row)
	}
	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	if _, err = actorID(c); err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	details, err := s.handlers.GetOrderDetails.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderDetails(details))
}

// ExecuteOrderAction handles POST /api/v1/orders/{orderId}/actions.
func (s *Server) ExecuteOrderAction(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	actor, err := actorID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req ExecuteActionRequest
	if err = bindBody(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewExecuteOrderActionCommand(orderID, actor, req.Action, req.Observation)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.handlers.ExecuteOrderAction.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toTransition(result))
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	actor, err := actorID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req ChangeStatusRequest
	if err = bindBody(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, actor, req.Status, req.Observation)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toTransition(result))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	actor, err := actorID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req CancelRequest
	if err = bindBody(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor, req.Reason)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.handlers.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toTransition(result))
}
