package http

import (
	"errors"
	"fmt"
	"net/http"

	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var errBadRequest = errors.New("bad request")

func badRequest(err error) error {
	return fmt.Errorf("%w: %w", errBadRequest, err)
}

// statusFor maps core errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, deliveryfee.ErrEditRejected),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, deliveryfee.ErrBelowMinimumOrder),
		errors.Is(err, deliveryfee.ErrOutsideDeliveryArea):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrOperationNotAllowed),
		errors.Is(err, order.ErrTargetFromHistory):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, deliveryfee.ErrDestinationRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Server errors are logged and their details
// are not sent to the client.
func (s *Server) fail(c echo.Context, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"route", c.Path(),
			"error", err,
		)
		return c.JSON(status, Error{Code: status, Message: http.StatusText(status)})
	}

	return c.JSON(status, Error{Code: status, Message: err.Error()})
}
