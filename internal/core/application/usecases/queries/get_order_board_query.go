package queries

import (
	"context"
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/report"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetOrderBoardQueryIsNotConstructed = errors.New(
	"GetOrderBoardQuery must be created via NewGetOrderBoardQuery constructor",
)

// GetOrderBoardQuery returns how many orders of an establishment sit in each status.
type GetOrderBoardQuery struct {
	establishmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderBoardQuery(establishmentID kernel.UUID) (GetOrderBoardQuery, error) {
	if err := establishmentID.Validate(); err != nil {
		return GetOrderBoardQuery{}, errs.NewValueIsRequiredErrorWithCause("establishment", err)
	}
	return GetOrderBoardQuery{establishmentID: establishmentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBoardQueryIsNotConstructed)
}

// GetOrderBoardQueryHandler serves the board cached by the refresh job and
// computes it on a miss.
type GetOrderBoardQueryHandler struct {
	db    *gorm.DB
	cache ports.OrderBoardCache
	now   func() time.Time
}

func NewGetOrderBoardQueryHandler(db *gorm.DB, cache ports.OrderBoardCache) GetOrderBoardQueryHandler {
	return GetOrderBoardQueryHandler{db: db, cache: cache, now: time.Now}
}

// Handle never fails because of the cache: a broken cache falls through to the
// database and a failed write is ignored.
func (h GetOrderBoardQueryHandler) Handle(ctx context.Context, query GetOrderBoardQuery) (report.Board, error) {
	if err := query.Validate(); err != nil {
		return report.Board{}, err
	}

	if board, found, err := h.cache.Get(ctx, query.establishmentID); err == nil && found {
		return board, nil
	}

	var rows []struct {
		Status string
		Total  int
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS total
		FROM orders
		WHERE establishment_id = ?
		GROUP BY status
	`, query.establishmentID.Bytes()).Scan(&rows).Error
	if err != nil {
		return report.Board{}, err
	}

	counts := make(map[order.Status]int, len(rows))
	for _, row := range rows {
		status, statusErr := order.StatusFromCode(row.Status)
		if statusErr != nil {
			return report.Board{}, statusErr
		}
		counts[status] = row.Total
	}

	board := report.NewBoard(query.establishmentID, counts, h.now().UTC())
	_ = h.cache.Set(ctx, board)
	return board, nil
}
