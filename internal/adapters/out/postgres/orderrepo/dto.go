// Package orderrepo persists order aggregates and their status history.
// Enumerations are stored as their wire codes so that rows stay readable for
// reporting tools that query the tables directly.
package orderrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table. The composite index serves the
// per-status listing and the board counts.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EstablishmentID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_establishment_status,priority:1"`
	Number             int             `gorm:"not null"`
	TrackingCode       string          `gorm:"size:32;not null"`
	Status             string          `gorm:"size:16;not null;index:idx_orders_establishment_status,priority:2"`
	DeliveryType       string          `gorm:"size:16;not null"`
	PaymentMethod      string          `gorm:"size:32;not null"`
	Total              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt          time.Time       `gorm:"not null;index"`
	AcceptedAt         *time.Time
	PreppedAt          *time.Time
	ReadyAt            *time.Time
	DeliveringAt       *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason *string `gorm:"size:500"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// HistoryDTO is one append-only row of order_status_history.
type HistoryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	PreviousStatus string    `gorm:"size:16;not null"`
	NewStatus      string    `gorm:"size:16;not null"`
	ActorID        uuid.UUID `gorm:"type:uuid;not null"`
	Observation    *string   `gorm:"size:1000"`
	CreatedAt      time.Time `gorm:"not null"`
}

func (HistoryDTO) TableName() string {
	return "order_status_history"
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:                 o.ID().Bytes(),
		EstablishmentID:    o.EstablishmentID().Bytes(),
		Number:             o.Number(),
		TrackingCode:       o.TrackingCode(),
		Status:             o.Status().String(),
		DeliveryType:       o.DeliveryType().String(),
		PaymentMethod:      o.PaymentMethod().String(),
		Total:              o.Total().Decimal(),
		CreatedAt:          o.CreatedAt().UTC(),
		AcceptedAt:         utc(o.AcceptedAt()),
		PreppedAt:          utc(o.PreppedAt()),
		ReadyAt:            utc(o.ReadyAt()),
		DeliveringAt:       utc(o.DeliveringAt()),
		CompletedAt:        utc(o.CompletedAt()),
		CancelledAt:        utc(o.CancelledAt()),
		CancellationReason: o.CancellationReason(),
	}
}

// ToDomain rebuilds the aggregate from a row. Exported for the query handlers that
// read orders without a unit of work.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	establishmentID, err := kernel.UUIDFromBytes(dto.EstablishmentID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}
	deliveryType, err := order.DeliveryTypeFromCode(dto.DeliveryType)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := order.PaymentMethodFromCode(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:                 id,
		EstablishmentID:    establishmentID,
		Number:             dto.Number,
		TrackingCode:       dto.TrackingCode,
		DeliveryType:       deliveryType,
		PaymentMethod:      paymentMethod,
		Total:              total,
		Status:             status,
		CreatedAt:          dto.CreatedAt,
		AcceptedAt:         dto.AcceptedAt,
		PreppedAt:          dto.PreppedAt,
		ReadyAt:            dto.ReadyAt,
		DeliveringAt:       dto.DeliveringAt,
		CompletedAt:        dto.CompletedAt,
		CancelledAt:        dto.CancelledAt,
		CancellationReason: dto.CancellationReason,
	})
}

func historyFromDomain(e order.HistoryEntry) HistoryDTO {
	return HistoryDTO{
		ID:             e.ID.Bytes(),
		OrderID:        e.OrderID.Bytes(),
		PreviousStatus: e.PreviousStatus.String(),
		NewStatus:      e.NewStatus.String(),
		ActorID:        e.ActorID.Bytes(),
		Observation:    e.Observation,
		CreatedAt:      e.CreatedAt.UTC(),
	}
}

// HistoryToDomain rebuilds a history entry from a row.
func HistoryToDomain(dto HistoryDTO) (order.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}
	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}
	previous, err := order.StatusFromCode(dto.PreviousStatus)
	if err != nil {
		return order.HistoryEntry{}, err
	}
	next, err := order.StatusFromCode(dto.NewStatus)
	if err != nil {
		return order.HistoryEntry{}, err
	}

	return order.HistoryEntry{
		ID:             id,
		OrderID:        orderID,
		PreviousStatus: previous,
		NewStatus:      next,
		ActorID:        actorID,
		Observation:    dto.Observation,
		CreatedAt:      dto.CreatedAt,
	}, nil
}
