package ports

import (
	"context"

	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/domain/model/kernel"
)

// DeliveryFeeRepository reads and writes the delivery fee fields of an establishment.
type DeliveryFeeRepository interface {
	// Get returns the persisted config or an errs.ObjectNotFoundError when the
	// establishment does not exist.
	Get(ctx context.Context, establishmentID kernel.UUID) (deliveryfee.Config, error)

	// ApplyPatch writes only the fields set in patch. Fields written concurrently by
	// another admin and absent from patch are left alone.
	ApplyPatch(ctx context.Context, establishmentID kernel.UUID, patch deliveryfee.Patch) error
}
