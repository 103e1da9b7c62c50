package queries

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderDetailsQueryHandler struct {
	db          *gorm.DB
	reactivator services.OrderReactivator
}

func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db, reactivator: services.NewOrderReactivator()}
}

type orderRow struct {
	ID                 uuid.UUID
	EstablishmentID    uuid.UUID
	Number             int
	TrackingCode       string
	Status             string
	DeliveryType       string
	PaymentMethod      string
	Total              decimal.Decimal
	CreatedAt          time.Time
	AcceptedAt         *time.Time
	PreppedAt          *time.Time
	ReadyAt            *time.Time
	DeliveringAt       *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason *string
}

type historyRow struct {
	ID             uuid.UUID
	PreviousStatus string
	NewStatus      string
	ActorID        uuid.UUID
	Observation    *string
	CreatedAt      time.Time
}

func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	var row orderRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id, establishment_id, number, tracking_code, status, delivery_type,
			payment_method, total, created_at, accepted_at, prepped_at, ready_at,
			delivering_at, completed_at, cancelled_at, cancellation_reason
		FROM orders
		WHERE id = ?
	`, query.orderID.Bytes()).Scan(&row)
	if result.Error != nil {
		return OrderDetails{}, result.Error
	}
	if result.RowsAffected == 0 {
		return OrderDetails{}, errs.NewObjectNotFoundError("order", query.orderID.String())
	}

	summary, err := newOrderSummary(row.ID, row.Number, row.TrackingCode, row.Status,
		row.DeliveryType, row.PaymentMethod, row.Total, row.CreatedAt)
	if err != nil {
		return OrderDetails{}, err
	}
	establishmentID, err := kernel.UUIDFromBytes(row.EstablishmentID[:])
	if err != nil {
		return OrderDetails{}, err
	}

	history, err := h.history(ctx, summary.ID)
	if err != nil {
		return OrderDetails{}, err
	}

	o, err := order.RestoreOrder(order.RestoreParams{
		ID:              summary.ID,
		EstablishmentID: establishmentID,
		Number:          summary.Number,
		TrackingCode:    summary.TrackingCode,
		DeliveryType:    summary.DeliveryType,
		PaymentMethod:   summary.PaymentMethod,
		Total:           summary.Total,
		Status:          summary.Status,
		CreatedAt:       summary.CreatedAt,
	})
	if err != nil {
		return OrderDetails{}, err
	}

	return OrderDetails{
		OrderSummary:       summary,
		EstablishmentID:    establishmentID,
		AcceptedAt:         row.AcceptedAt,
		PreppedAt:          row.PreppedAt,
		ReadyAt:            row.ReadyAt,
		DeliveringAt:       row.DeliveringAt,
		CompletedAt:        row.CompletedAt,
		CancelledAt:        row.CancelledAt,
		CancellationReason: row.CancellationReason,
		History:            history,
		Actions:            h.actions(o, history),
	}, nil
}

func (h GetOrderDetailsQueryHandler) history(ctx context.Context, orderID kernel.UUID) ([]order.HistoryEntry, error) {
	var rows []historyRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, previous_status, new_status, actor_id, observation, created_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY created_at ASC
	`, orderID.Bytes()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]order.HistoryEntry, 0, len(rows))
	for _, r := range rows {
		id, idErr := kernel.UUIDFromBytes(r.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		actorID, idErr := kernel.UUIDFromBytes(r.ActorID[:])
		if idErr != nil {
			return nil, idErr
		}
		previous, statusErr := order.StatusFromCode(r.PreviousStatus)
		if statusErr != nil {
			return nil, statusErr
		}
		next, statusErr := order.StatusFromCode(r.NewStatus)
		if statusErr != nil {
			return nil, statusErr
		}

		entries = append(entries, order.HistoryEntry{
			ID:             id,
			OrderID:        orderID,
			PreviousStatus: previous,
			NewStatus:      next,
			ActorID:        actorID,
			Observation:    r.Observation,
			CreatedAt:      r.CreatedAt,
		})
	}

	return entries, nil
}

func (h GetOrderDetailsQueryHandler) actions(o *order.Order, history []order.HistoryEntry) []AvailableAction {
	available := o.AvailableActions()
	actions := make([]AvailableAction, 0, len(available))

	for _, a := range available {
		var target order.Status
		if a == order.Reactivate {
			target = h.reactivator.Target(o, history)
		} else {
			t, err := o.Status().Target(a, o.DeliveryType())
			if err != nil {
				continue
			}
			target = t
		}

		actions = append(actions, AvailableAction{
			Action:              a,
			Target:              target,
			RequiresObservation: order.RequiresObservation(o.Status(), target, order.FixedAction),
		})
	}

	return actions
}
