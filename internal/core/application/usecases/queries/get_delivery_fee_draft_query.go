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

var ErrGetDeliveryFeeDraftQueryIsNotConstructed = errors.New(
	"GetDeliveryFeeDraftQuery must be created via NewGetDeliveryFeeDraftQuery constructor",
)

// GetDeliveryFeeDraftQuery shows the editing session of an admin. Without a
// session it shows the persisted config as an untouched draft; nothing is stored.
type GetDeliveryFeeDraftQuery struct {
	key ports.DraftKey

	guard guard.ConstructorGuard
}

func NewGetDeliveryFeeDraftQuery(establishmentID, actorID kernel.UUID) (GetDeliveryFeeDraftQuery, error) {
	if err := establishmentID.Validate(); err != nil {
		return GetDeliveryFeeDraftQuery{}, errs.NewValueIsRequiredErrorWithCause("establishment", err)
	}
	if err := actorID.Validate(); err != nil {
		return GetDeliveryFeeDraftQuery{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	return GetDeliveryFeeDraftQuery{
		key:   ports.DraftKey{EstablishmentID: establishmentID, ActorID: actorID},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetDeliveryFeeDraftQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryFeeDraftQueryIsNotConstructed)
}

type GetDeliveryFeeDraftQueryHandler struct {
	drafts ports.DeliveryFeeDraftStore
	repo   ports.DeliveryFeeRepository
}

func NewGetDeliveryFeeDraftQueryHandler(
	drafts ports.DeliveryFeeDraftStore,
	repo ports.DeliveryFeeRepository,
) GetDeliveryFeeDraftQueryHandler {
	return GetDeliveryFeeDraftQueryHandler{drafts: drafts, repo: repo}
}

func (h GetDeliveryFeeDraftQueryHandler) Handle(ctx context.Context, query GetDeliveryFeeDraftQuery) (deliveryfee.View, error) {
	if err := query.Validate(); err != nil {
		return deliveryfee.View{}, err
	}

	editor, found, err := h.drafts.Load(ctx, query.key)
	if err != nil {
		return deliveryfee.View{}, err
	}
	if found {
		return editor.View(), nil
	}

	cfg, err := h.repo.Get(ctx, query.key.EstablishmentID)
	if err != nil {
		return deliveryfee.View{}, err
	}
	return deliveryfee.NewEditor(cfg).View(), nil
}
