package queries

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrQuoteDeliveryFeeQueryIsNotConstructed = errors.New(
	"QuoteDeliveryFeeQuery must be created via NewQuoteDeliveryFeeQuery constructor",
)

// QuoteDeliveryFeeQuery prices a delivery with the saved config of an
// establishment. Drafts never take part in a quote.
type QuoteDeliveryFeeQuery struct {
	establishmentID kernel.UUID
	destination     deliveryfee.Destination
	orderTotal      kernel.Money

	guard guard.ConstructorGuard
}

func NewQuoteDeliveryFeeQuery(
	establishmentID kernel.UUID,
	destination deliveryfee.Destination,
	orderTotal kernel.Money,
) (QuoteDeliveryFeeQuery, error) {
	if err := establishmentID.Validate(); err != nil {
		return QuoteDeliveryFeeQuery{}, errs.NewValueIsRequiredErrorWithCause("establishment", err)
	}
	if destination.DistanceKm != nil && *destination.DistanceKm < 0 {
		return QuoteDeliveryFeeQuery{}, errs.NewValueIsInvalidError("distance")
	}

	return QuoteDeliveryFeeQuery{
		establishmentID: establishmentID,
		destination:     destination,
		orderTotal:      orderTotal,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteDeliveryFeeQuery) Validate() error {
	return q.guard.Validate(ErrQuoteDeliveryFeeQueryIsNotConstructed)
}

type QuoteDeliveryFeeQueryHandler struct {
	repo ports.DeliveryFeeRepository
}

func NewQuoteDeliveryFeeQueryHandler(repo ports.DeliveryFeeRepository) QuoteDeliveryFeeQueryHandler {
	return QuoteDeliveryFeeQueryHandler{repo: repo}
}

func (h QuoteDeliveryFeeQueryHandler) Handle(ctx context.Context, query QuoteDeliveryFeeQuery) (deliveryfee.Quote, error) {
	if err := query.Validate(); err != nil {
		return deliveryfee.Quote{}, err
	}

	cfg, err := h.repo.Get(ctx, query.establishmentID)
	if err != nil {
		return deliveryfee.Quote{}, err
	}
	return cfg.Quote(query.destination, query.orderTotal)
}
