package commands

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/order"
)

// TransitionResult is what every successful status transition returns.
type TransitionResult struct {
	Order *order.Order
	Entry order.HistoryEntry

	// SwitchFilterTo is set on reactivation: the listing should show the status the
	// order came back to.
	SwitchFilterTo *order.Status
}

func newTransitionResult(o *order.Order, entry order.HistoryEntry) TransitionResult {
	result := TransitionResult{Order: o, Entry: entry}
	if entry.IsReactivation() {
		target := entry.NewStatus
		result.SwitchFilterTo = &target
	}
	return result
}

// recordTransition persists the mutated order and its history entry, then commits.
func recordTransition(ctx context.Context, uow OrderUoW, o *order.Order, entry order.HistoryEntry) error {
	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}
	if err := uow.OrderHistoryRepository().Append(ctx, entry); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

// Clock returns the current time. Handlers use time.Now unless told otherwise.
type Clock func() time.Time
