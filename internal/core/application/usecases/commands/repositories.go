// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"backoffice/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OrderHistoryRepoFactory interface {
		OrderHistoryRepository() ports.OrderHistoryRepository
	}

	DeliveryFeeRepoFactory interface {
		DeliveryFeeRepository() ports.DeliveryFeeRepository
	}

	// OrderUoW covers a status transition: the order row and its history entry are
	// written in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   entry, err := o.Execute(action, actor, observation, now)
	//   err = uow.OrderRepository().Update(ctx, o)
	//   err = uow.OrderHistoryRepository().Append(ctx, entry)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OrderHistoryRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryFeeUoW manages transactions on the establishment delivery fee fields.
	DeliveryFeeUoW interface {
		TxManager
		DeliveryFeeRepoFactory
	}

	DeliveryFeeUoWFactory interface {
		Create() DeliveryFeeUoW
	}
)
