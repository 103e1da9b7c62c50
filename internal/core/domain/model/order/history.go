package order

import (
	"strings"
	"time"

	"backoffice/internal/core/domain/model/kernel"
)

// HistoryEntry records one status transition. Entries are append-only.
type HistoryEntry struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	PreviousStatus Status
	NewStatus      Status
	ActorID        kernel.UUID
	Observation    *string
	CreatedAt      time.Time
}

func newHistoryEntry(orderID kernel.UUID, from, to Status, actorID kernel.UUID, observation string, at time.Time) HistoryEntry {
	entry := HistoryEntry{
		ID:             kernel.NewUUID(),
		OrderID:        orderID,
		PreviousStatus: from,
		NewStatus:      to,
		ActorID:        actorID,
		CreatedAt:      at,
	}
	if obs := strings.TrimSpace(observation); obs != "" {
		entry.Observation = &obs
	}
	return entry
}

// IsCancellation reports whether the entry moved the order into Cancelled.
func (e HistoryEntry) IsCancellation() bool {
	return e.NewStatus == Cancelled && e.PreviousStatus != Cancelled
}

// IsReactivation reports whether the entry moved the order out of Cancelled.
func (e HistoryEntry) IsReactivation() bool {
	return e.PreviousStatus == Cancelled && e.NewStatus != Cancelled
}
