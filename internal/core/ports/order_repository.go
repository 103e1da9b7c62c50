// Package ports defines the contracts between the core and its adapters: relational
// repositories, the unit of work, and the Redis-backed draft store and board cache.
package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted; cancellation is a status.
type OrderRepository interface {
	// Add persists an order coming from the checkout flow.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status and phase timestamps of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// CountByStatus returns how many orders of the establishment sit in each status.
	CountByStatus(ctx context.Context, establishmentID kernel.UUID) (map[order.Status]int, error)

	// EstablishmentsWithOrders lists the establishments having at least one order.
	EstablishmentsWithOrders(ctx context.Context) ([]kernel.UUID, error)
}

// OrderHistoryRepository stores the append-only status history.
type OrderHistoryRepository interface {
	Append(ctx context.Context, entry order.HistoryEntry) error

	// ListByOrder returns the entries of one order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.HistoryEntry, error)
}
