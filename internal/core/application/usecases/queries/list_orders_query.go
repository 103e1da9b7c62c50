// Package queries contains read-only use cases. Handlers read the database directly
// and never go through a unit of work.
package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders of one establishment in one status, newest first.
//
// Example:
//
//	query, err := NewListOrdersQuery(establishmentID, order.Unknown, 0)
//	// status defaults to pendente, limit to DefaultListLimit
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	establishmentID kernel.UUID
	status          order.Status
	limit           int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery falls back to order.Pending for an Unknown status and to
// DefaultListLimit for a non-positive limit.
func NewListOrdersQuery(establishmentID kernel.UUID, status order.Status, limit int) (ListOrdersQuery, error) {
	if err := establishmentID.Validate(); err != nil {
		return ListOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("establishment", err)
	}
	if status == order.Unknown {
		status = order.Pending
	}
	if err := status.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit)
	}

	return ListOrdersQuery{
		establishmentID: establishmentID,
		status:          status,
		limit:           limit,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Status() order.Status { return q.status }

// OrderSummary is one line of the order listing.
type OrderSummary struct {
	ID            kernel.UUID
	Number        int
	TrackingCode  string
	Status        order.Status
	DeliveryType  order.DeliveryType
	PaymentMethod order.PaymentMethod
	Total         kernel.Money
	CreatedAt     time.Time
}
