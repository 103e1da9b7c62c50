package establishmentrepo

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryFeeRepository implements ports.DeliveryFeeRepository.
type GormDeliveryFeeRepository struct {
	db *gorm.DB
}

func NewGormDeliveryFeeRepository(db *gorm.DB) *GormDeliveryFeeRepository {
	return &GormDeliveryFeeRepository{db: db}
}

// Create inserts an establishment with an initial configuration. Establishments are
// owned by the onboarding flow; the back office only needs this to seed data.
func (r *GormDeliveryFeeRepository) Create(ctx context.Context, id kernel.UUID, name string, cfg deliveryfee.Config) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(id, name, cfg)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormDeliveryFeeRepository) Get(ctx context.Context, establishmentID kernel.UUID) (deliveryfee.Config, error) {
	if err := establishmentID.Validate(); err != nil {
		return deliveryfee.Config{}, err
	}

	var dto EstablishmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", establishmentID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return deliveryfee.Config{}, errs.NewObjectNotFoundError("establishment", establishmentID.String())
		}
		return deliveryfee.Config{}, err
	}

	return toDomain(dto)
}

// ApplyPatch updates only the columns present in patch.
func (r *GormDeliveryFeeRepository) ApplyPatch(ctx context.Context, establishmentID kernel.UUID, patch deliveryfee.Patch) error {
	if err := establishmentID.Validate(); err != nil {
		return err
	}
	if patch.IsEmpty() {
		return nil
	}

	columns, err := patchColumns(patch)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&EstablishmentDTO{}).
		Where("id = ?", establishmentID.Bytes()).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("establishment", establishmentID.String())
	}

	return nil
}
