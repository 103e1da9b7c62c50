package services

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderReactivator resolves where a cancelled order goes back to and runs the
// reactivation.
//
// Business rules:
//   - the target is the previous status of the most recent entry that moved the
//     order into cancelado
//   - without such an entry the order goes back to pendente
//   - entries of other orders are ignored
type OrderReactivator struct{}

func NewOrderReactivator() OrderReactivator {
	return OrderReactivator{}
}

// Target returns the status to restore for o given its history, oldest first.
// For equal timestamps the later entry in the slice wins.
func (r OrderReactivator) Target(o *order.Order, history []order.HistoryEntry) order.Status {
	var (
		latest order.HistoryEntry
		found  bool
	)

	for _, e := range history {
		if !e.OrderID.IsEqual(o.ID()) || e.NewStatus != order.Cancelled {
			continue
		}
		if !found || !e.CreatedAt.Before(latest.CreatedAt) {
			latest = e
			found = true
		}
	}

	if !found || latest.PreviousStatus.Validate() != nil || latest.PreviousStatus == order.Cancelled {
		return order.Pending
	}
	return latest.PreviousStatus
}

// Reactivate moves o out of cancelado to Target(o, history).
func (r OrderReactivator) Reactivate(
	o *order.Order,
	history []order.HistoryEntry,
	actorID kernel.UUID,
	observation string,
	now time.Time,
) (order.HistoryEntry, error) {
	if err := o.Validate(); err != nil {
		return order.HistoryEntry{}, err
	}

	return o.Reactivate(r.Target(o, history), actorID, observation, now)
}
