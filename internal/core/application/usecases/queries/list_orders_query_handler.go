package queries

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			tracking_code,
			status,
			delivery_type,
			payment_method,
			total,
			created_at
		FROM orders
		WHERE establishment_id = ? AND status = ?
		ORDER BY created_at DESC, number DESC
		LIMIT ?
	`, query.establishmentID.Bytes(), query.status.String(), query.limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		var (
			id                           uuid.UUID
			number                       int
			trackingCode                 string
			status, deliveryType, method string
			total                        decimal.Decimal
			createdAt                    time.Time
		)
		if err = rows.Scan(&id, &number, &trackingCode, &status, &deliveryType, &method, &total, &createdAt); err != nil {
			return nil, err
		}

		summary, mapErr := newOrderSummary(id, number, trackingCode, status, deliveryType, method, total, createdAt)
		if mapErr != nil {
			return nil, mapErr
		}
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func newOrderSummary(
	id uuid.UUID,
	number int,
	trackingCode, status, deliveryType, method string,
	total decimal.Decimal,
	createdAt time.Time,
) (OrderSummary, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummary{}, err
	}
	s, err := order.StatusFromCode(status)
	if err != nil {
		return OrderSummary{}, err
	}
	dt, err := order.DeliveryTypeFromCode(deliveryType)
	if err != nil {
		return OrderSummary{}, err
	}
	pm, err := order.PaymentMethodFromCode(method)
	if err != nil {
		return OrderSummary{}, err
	}
	money, err := kernel.NewMoney(total)
	if err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		ID:            orderID,
		Number:        number,
		TrackingCode:  trackingCode,
		Status:        s,
		DeliveryType:  dt,
		PaymentMethod: pm,
		Total:         money,
		CreatedAt:     createdAt,
	}, nil
}
