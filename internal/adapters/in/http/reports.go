package http

import (
	"net/http"
	"time"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetOrderBoard handles GET /api/v1/establishments/{establishmentId}/orders/board.
func (s *Server) GetOrderBoard(c echo.Context) error {
	establishmentID, err := pathUUID(c, "establishmentId")
	if err != nil {
		return s.fail(c, err)
	}
	if _, err = actorID(c); err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderBoardQuery(establishmentID)
	if err != nil {
		return s.fail(c, err)
	}
	board, err := s.handlers.GetOrderBoard.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, board)
}

// GetSalesReport handles GET /api/v1/establishments/{establishmentId}/reports/sales.
// Hour and day buckets follow tz, which defaults to UTC.
func (s *Server) GetSalesReport(c echo.Context) error {
	establishmentID, err := pathUUID(c, "establishmentId")
	if err != nil {
		return s.fail(c, err)
	}
	if _, err = actorID(c); err != nil {
		return s.fail(c, err)
	}
	from, err := queryTime(c, "from")
	if err != nil {
		return s.fail(c, err)
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return s.fail(c, err)
	}
	tz, err := queryString(c, "tz")
	if err != nil {
		return s.fail(c, err)
	}

	loc := time.UTC
	if tz != "" {
		if loc, err = time.LoadLocation(tz); err != nil {
			return s.fail(c, errs.NewValueIsInvalidErrorWithCause("tz", err))
		}
	}

	query, err := queries.NewGetSalesReportQuery(establishmentID, from, to, loc)
	if err != nil {
		return s.fail(c, err)
	}
	sales, err := s.handlers.GetSalesReport.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, sales)
}
