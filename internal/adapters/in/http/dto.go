package http

import (
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderSummary is one row of the order listing.
type OrderSummary struct {
	ID            uuid.UUID    `json:"id"`
	Number        int          `json:"number"`
	TrackingCode  string       `json:"trackingCode"`
	Status        order.Status `json:"status"`
	DeliveryType  string       `json:"deliveryType"`
	PaymentMethod string       `json:"paymentMethod"`
	Total         kernel.Money `json:"total"`
	CreatedAt     time.Time    `json:"createdAt"`
}

type HistoryEntry struct {
	ID             uuid.UUID    `json:"id"`
	PreviousStatus order.Status `json:"previousStatus"`
	NewStatus      order.Status `json:"newStatus"`
	ActorID        uuid.UUID    `json:"actorId"`
	Observation    *string      `json:"observation"`
	CreatedAt      time.Time    `json:"createdAt"`
}

type AvailableAction struct {
	Action              order.Action `json:"action"`
	Target              order.Status `json:"target"`
	RequiresObservation bool         `json:"requiresObservation"`
}

type OrderDetails struct {
	OrderSummary
	EstablishmentID    uuid.UUID         `json:"establishmentId"`
	AcceptedAt         *time.Time        `json:"acceptedAt,omitempty"`
	PreppedAt          *time.Time        `json:"preppedAt,omitempty"`
	ReadyAt            *time.Time        `json:"readyAt,omitempty"`
	DeliveringAt       *time.Time        `json:"deliveringAt,omitempty"`
	CompletedAt        *time.Time        `json:"completedAt,omitempty"`
	CancelledAt        *time.Time        `json:"cancelledAt,omitempty"`
	CancellationReason *string           `json:"cancellationReason"`
	History            []HistoryEntry    `json:"history"`
	Actions            []AvailableAction `json:"actions"`
}

// Transition is returned by every order status change.
type Transition struct {
	Order          OrderSummary  `json:"order"`
	Entry          HistoryEntry  `json:"entry"`
	SwitchFilterTo *order.Status `json:"switchFilterTo,omitempty"`
}

type ExecuteActionRequest struct {
	Action      order.Action `json:"action"`
	Observation string       `json:"observation"`
}

type ChangeStatusRequest struct {
	Status      order.Status `json:"status"`
	Observation string       `json:"observation"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

// SettingsRequest leaves absent fields unchanged.
type SettingsRequest struct {
	Modality                     *deliveryfee.Modality `json:"modality"`
	FlatFeeAmount                *kernel.Money         `json:"flatFeeAmount"`
	MinimumOrderValue            *kernel.Money         `json:"minimumOrderValue"`
	DefaultFeeOtherNeighborhoods *kernel.Money         `json:"defaultFeeOtherNeighborhoods"`
	DeliveryRadiusKm             *float64              `json:"deliveryRadiusKm"`
	PrepTimeMinRange             *int                  `json:"prepTimeMinRange"`
	PrepTimeMaxRange             *int                  `json:"prepTimeMaxRange"`
}

type CityRequest struct {
	Name string `json:"name"`
}

type NeighborhoodTierRequest struct {
	Name      string       `json:"name"`
	City      string       `json:"city"`
	FeeAmount kernel.Money `json:"feeAmount"`
}

type DistanceTierRequest struct {
	MaxDistanceKm float64      `json:"maxDistanceKm"`
	FeeAmount     kernel.Money `json:"feeAmount"`
}

type QuoteRequest struct {
	DistanceKm   *float64     `json:"distanceKm"`
	Neighborhood string       `json:"neighborhood"`
	City         string       `json:"city"`
	OrderTotal   kernel.Money `json:"orderTotal"`
}

type SaveResponse struct {
	Outcome commands.SaveOutcome `json:"outcome"`
	Fields  []deliveryfee.Field  `json:"fields"`
	View    deliveryfee.View     `json:"view"`
}

func (r SettingsRequest) toSettings() deliveryfee.Settings {
	return deliveryfee.Settings{
		Modality:                     r.Modality,
		FlatFeeAmount:                r.FlatFeeAmount,
		MinimumOrderValue:            r.MinimumOrderValue,
		DefaultFeeOtherNeighborhoods: r.DefaultFeeOtherNeighborhoods,
		DeliveryRadiusKm:             r.DeliveryRadiusKm,
		PrepTimeMinRange:             r.PrepTimeMinRange,
		PrepTimeMaxRange:             r.PrepTimeMaxRange,
	}
}

func (r QuoteRequest) toDestination() deliveryfee.Destination {
	return deliveryfee.Destination{
		DistanceKm:   r.DistanceKm,
		Neighborhood: r.Neighborhood,
		City:         r.City,
	}
}

func toOrderSummary(s queries.OrderSummary) OrderSummary {
	return OrderSummary{
		ID:            s.ID.Bytes(),
		Number:        s.Number,
		TrackingCode:  s.TrackingCode,
		Status:        s.Status,
		DeliveryType:  s.DeliveryType.String(),
		PaymentMethod: s.PaymentMethod.String(),
		Total:         s.Total,
		CreatedAt:     s.CreatedAt,
	}
}

func summaryOf(o *order.Order) OrderSummary {
	return OrderSummary{
		ID:            o.ID().Bytes(),
		Number:        o.Number(),
		TrackingCode:  o.TrackingCode(),
		Status:        o.Status(),
		DeliveryType:  o.DeliveryType().String(),
		PaymentMethod: o.PaymentMethod().String(),
		Total:         o.Total(),
		CreatedAt:     o.CreatedAt(),
	}
}

func toHistoryEntry(e order.HistoryEntry) HistoryEntry {
	return HistoryEntry{
		ID:             e.ID.Bytes(),
		PreviousStatus: e.PreviousStatus,
		NewStatus:      e.NewStatus,
		ActorID:        e.ActorID.Bytes(),
		Observation:    e.Observation,
		CreatedAt:      e.CreatedAt,
	}
}

func toTransition(r commands.TransitionResult) Transition {
	return Transition{
		Order:          summaryOf(r.Order),
		Entry:          toHistoryEntry(r.Entry),
		SwitchFilterTo: r.SwitchFilterTo,
	}
}

func toOrderDetails(d queries.OrderDetails) OrderDetails {
	history := make([]HistoryEntry, len(d.History))
	for i, e := range d.History {
		history[i] = toHistoryEntry(e)
	}

	actions := make([]AvailableAction, len(d.Actions))
	for i, a := range d.Actions {
		actions[i] = AvailableAction{
			Action:              a.Action,
			Target:              a.Target,
			RequiresObservation: a.RequiresObservation,
		}
	}

	return OrderDetails{
		OrderSummary:       toOrderSummary(d.OrderSummary),
		EstablishmentID:    d.EstablishmentID.Bytes(),
		AcceptedAt:         d.AcceptedAt,
		PreppedAt:          d.PreppedAt,
		ReadyAt:            d.ReadyAt,
		DeliveringAt:       d.DeliveringAt,
		CompletedAt:        d.CompletedAt,
		CancelledAt:        d.CancelledAt,
		CancellationReason: d.CancellationReason,
		History:            history,
		Actions:            actions,
	}
}
