package ports

import (
	"context"

	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/report"
)

// DraftKey identifies the editing session of one admin on one establishment.
type DraftKey struct {
	EstablishmentID kernel.UUID
	ActorID         kernel.UUID
}

// DeliveryFeeDraftStore keeps draft sessions between requests. Sessions expire.
type DeliveryFeeDraftStore interface {
	// Load returns the stored session, or found=false when there is none.
	Load(ctx context.Context, key DraftKey) (editor *deliveryfee.Editor, found bool, err error)
	Save(ctx context.Context, key DraftKey, editor *deliveryfee.Editor) error
	Delete(ctx context.Context, key DraftKey) error
}

// OrderBoardCache keeps the last computed status board of each establishment.
type OrderBoardCache interface {
	// Get returns the cached board, or found=false on a miss.
	Get(ctx context.Context, establishmentID kernel.UUID) (board report.Board, found bool, err error)
	Set(ctx context.Context, board report.Board) error
}
