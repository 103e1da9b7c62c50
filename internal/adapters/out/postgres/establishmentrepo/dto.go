// Package establishmentrepo persists the delivery fee fields that live on the
// establishments table. Tier lists are JSON columns; served cities is a text array.
package establishmentrepo

import (
	"database/sql/driver"
	"encoding/json"

	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// EstablishmentDTO is the row of the establishments table. Only the columns the
// back office edits are mapped.
type EstablishmentDTO struct {
	ID                           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name                         string          `gorm:"size:120;not null"`
	DeliveryModality             string          `gorm:"size:32;not null;default:sem_taxa"`
	FlatFeeAmount                decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	MinimumOrderValue            decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ServedCities                 CityList
	DistanceTiers                datatypes.JSON
	NeighborhoodTiers            datatypes.JSON
	DefaultFeeOtherNeighborhoods decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	DeliveryRadiusKm             float64         `gorm:"not null;default:0"`
	PrepTimeMinRange             int             `gorm:"not null;default:30"`
	PrepTimeMaxRange             int             `gorm:"not null;default:50"`
}

func (EstablishmentDTO) TableName() string {
	return "establishments"
}

// CityList stores served cities in the Postgres array literal format. On Postgres
// the column is text[]; other dialects keep the same literal in a text column.
type CityList []string

func (CityList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

func (c CityList) Value() (driver.Value, error) {
	if c == nil {
		return "{}", nil
	}
	return pq.StringArray(c).Value()
}

func (c *CityList) Scan(src any) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*c = CityList(arr)
	return nil
}

func fromDomain(id kernel.UUID, name string, cfg deliveryfee.Config) (EstablishmentDTO, error) {
	distance, err := marshalTiers(cfg.DistanceTiers)
	if err != nil {
		return EstablishmentDTO{}, err
	}
	neighborhood, err := marshalTiers(cfg.NeighborhoodTiers)
	if err != nil {
		return EstablishmentDTO{}, err
	}

	return EstablishmentDTO{
		ID:                           id.Bytes(),
		Name:                         name,
		DeliveryModality:             cfg.Modality.String(),
		FlatFeeAmount:                cfg.FlatFeeAmount.Decimal(),
		MinimumOrderValue:            cfg.MinimumOrderValue.Decimal(),
		ServedCities:                 CityList(cfg.ServedCities),
		DistanceTiers:                distance,
		NeighborhoodTiers:            neighborhood,
		DefaultFeeOtherNeighborhoods: cfg.DefaultFeeOtherNeighborhoods.Decimal(),
		DeliveryRadiusKm:             cfg.DeliveryRadiusKm,
		PrepTimeMinRange:             cfg.PrepTimeMinRange,
		PrepTimeMaxRange:             cfg.PrepTimeMaxRange,
	}, nil
}

func toDomain(dto EstablishmentDTO) (deliveryfee.Config, error) {
	modality, err := deliveryfee.ModalityFromCode(dto.DeliveryModality)
	if err != nil {
		return deliveryfee.Config{}, err
	}
	flat, err := kernel.NewMoney(dto.FlatFeeAmount)
	if err != nil {
		return deliveryfee.Config{}, err
	}
	minimum, err := kernel.NewMoney(dto.MinimumOrderValue)
	if err != nil {
		return deliveryfee.Config{}, err
	}
	otherFee, err := kernel.NewMoney(dto.DefaultFeeOtherNeighborhoods)
	if err != nil {
		return deliveryfee.Config{}, err
	}

	var distance []deliveryfee.DistanceTier
	if err := unmarshalTiers(dto.DistanceTiers, &distance); err != nil {
		return deliveryfee.Config{}, err
	}
	var neighborhood []deliveryfee.NeighborhoodTier
	if err := unmarshalTiers(dto.NeighborhoodTiers, &neighborhood); err != nil {
		return deliveryfee.Config{}, err
	}

	return deliveryfee.Config{
		Modality:                     modality,
		FlatFeeAmount:                flat,
		MinimumOrderValue:            minimum,
		ServedCities:                 []string(dto.ServedCities),
		DistanceTiers:                distance,
		NeighborhoodTiers:            neighborhood,
		DefaultFeeOtherNeighborhoods: otherFee,
		DeliveryRadiusKm:             dto.DeliveryRadiusKm,
		PrepTimeMinRange:             dto.PrepTimeMinRange,
		PrepTimeMaxRange:             dto.PrepTimeMaxRange,
	}, nil
}

// patchColumns maps the set fields of patch to column updates.
func patchColumns(patch deliveryfee.Patch) (map[string]any, error) {
	columns := make(map[string]any)

	if patch.Modality != nil {
		columns["delivery_modality"] = patch.Modality.String()
	}
	if patch.FlatFeeAmount != nil {
		columns["flat_fee_amount"] = patch.FlatFeeAmount.Decimal()
	}
	if patch.MinimumOrderValue != nil {
		columns["minimum_order_value"] = patch.MinimumOrderValue.Decimal()
	}
	if patch.ServedCities != nil {
		columns["served_cities"] = CityList(*patch.ServedCities)
	}
	if patch.DistanceTiers != nil {
		raw, err := marshalTiers(*patch.DistanceTiers)
		if err != nil {
			return nil, err
		}
		columns["distance_tiers"] = raw
	}
	if patch.NeighborhoodTiers != nil {
		raw, err := marshalTiers(*patch.NeighborhoodTiers)
		if err != nil {
			return nil, err
		}
		columns["neighborhood_tiers"] = raw
	}
	if patch.DefaultFeeOtherNeighborhoods != nil {
		columns["default_fee_other_neighborhoods"] = patch.DefaultFeeOtherNeighborhoods.Decimal()
	}
	if patch.DeliveryRadiusKm != nil {
		columns["delivery_radius_km"] = *patch.DeliveryRadiusKm
	}
	if patch.PrepTimeMinRange != nil {
		columns["prep_time_min_range"] = *patch.PrepTimeMinRange
	}
	if patch.PrepTimeMaxRange != nil {
		columns["prep_time_max_range"] = *patch.PrepTimeMaxRange
	}

	return columns, nil
}

func marshalTiers[T any](tiers []T) (datatypes.JSON, error) {
	if tiers == nil {
		tiers = []T{}
	}
	raw, err := json.Marshal(tiers)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func unmarshalTiers[T any](raw datatypes.JSON, out *[]T) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
