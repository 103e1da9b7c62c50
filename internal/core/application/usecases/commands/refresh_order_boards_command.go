package commands

import (
	"context"
	"errors"
	"time"

	"backoffice/internal/core/domain/model/report"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/guard"
)

var ErrRefreshOrderBoardsCommandIsNotConstructed = errors.New(
	"RefreshOrderBoardsCommand must be created via NewRefreshOrderBoardsCommand constructor",
)

// RefreshOrderBoardsCommand recomputes the status board of every establishment with
// orders. It is run by the polling job.
type RefreshOrderBoardsCommand struct {
	guard guard.ConstructorGuard
}

func NewRefreshOrderBoardsCommand() RefreshOrderBoardsCommand {
	return RefreshOrderBoardsCommand{guard: guard.NewConstructorGuard()}
}

func (c *RefreshOrderBoardsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshOrderBoardsCommandIsNotConstructed)
}

type RefreshOrderBoardsCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      ports.OrderBoardCache
	now        Clock
}

func NewRefreshOrderBoardsCommandHandler(
	uowFactory OrderUoWFactory,
	cache ports.OrderBoardCache,
) RefreshOrderBoardsCommandHandler {
	return RefreshOrderBoardsCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		now:        time.Now,
	}
}

// Handle returns how many boards were refreshed. A failing establishment stops the
// run; boards refreshed before it stay cached.
func (h RefreshOrderBoardsCommandHandler) Handle(ctx context.Context, cmd RefreshOrderBoardsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	repo := h.uowFactory.Create().OrderRepository()

	establishments, err := repo.EstablishmentsWithOrders(ctx)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, id := range establishments {
		counts, countErr := repo.CountByStatus(ctx, id)
		if countErr != nil {
			return refreshed, countErr
		}
		if err = h.cache.Set(ctx, report.NewBoard(id, counts, h.now())); err != nil {
			return refreshed, err
		}
		refreshed++
	}

	return refreshed, nil
}
