package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery loads one order with its history and the buttons the
// operator can press on it.
type GetOrderDetailsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(orderID kernel.UUID) (GetOrderDetailsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailsQuery{}, errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	return GetOrderDetailsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// AvailableAction is one button of the order card. Target is where the order
// lands; for a reactivation it is resolved from the history.
type AvailableAction struct {
	Action              order.Action
	Target              order.Status
	RequiresObservation bool
}

type OrderDetails struct {
	OrderSummary
	EstablishmentID    kernel.UUID
	AcceptedAt         *time.Time
	PreppedAt          *time.Time
	ReadyAt            *time.Time
	DeliveringAt       *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason *string

	// History is oldest first.
	History []order.HistoryEntry
	Actions []AvailableAction
}
