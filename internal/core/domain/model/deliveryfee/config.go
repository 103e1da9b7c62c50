package deliveryfee

import (
	"errors"
	"fmt"
	"slices"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// Config is the delivery fee configuration of one establishment. It is used both as
// the last saved snapshot and as the working draft.
type Config struct {
	Modality          Modality     `json:"modality"`
	FlatFeeAmount     kernel.Money `json:"flatFeeAmount"`
	MinimumOrderValue kernel.Money `json:"minimumOrderValue"`
	// ServedCities is only used by NeighborhoodTiered.
	ServedCities      []string           `json:"servedCities"`
	DistanceTiers     []DistanceTier     `json:"distanceTiers"`
	NeighborhoodTiers []NeighborhoodTier `json:"neighborhoodTiers"`
	// DefaultFeeOtherNeighborhoods of zero blocks delivery outside the listed neighborhoods.
	DefaultFeeOtherNeighborhoods kernel.Money `json:"defaultFeeOtherNeighborhoods"`
	// DeliveryRadiusKm applies to NoFee and FlatFee; zero means unlimited.
	DeliveryRadiusKm float64 `json:"deliveryRadiusKm"`
	PrepTimeMinRange int     `json:"prepTimeMinRange"`
	PrepTimeMaxRange int     `json:"prepTimeMaxRange"`
}

// DefaultConfig is what a new establishment starts with.
func DefaultConfig() Config {
	return Config{
		Modality:         NoFee,
		PrepTimeMinRange: 30,
		PrepTimeMaxRange: 50,
	}
}

// Clone returns a copy that shares no slices with c.
func (c Config) Clone() Config {
	out := c
	out.ServedCities = slices.Clone(c.ServedCities)
	out.DistanceTiers = slices.Clone(c.DistanceTiers)
	out.NeighborhoodTiers = slices.Clone(c.NeighborhoodTiers)
	return out
}

// CanSaveModality reports whether draft is complete enough to be saved under modality.
// It never fails: an incomplete draft simply is not savable.
func CanSaveModality(modality Modality, draft Config) bool {
	switch modality {
	case NoFee:
		return true
	case FlatFee:
		return draft.FlatFeeAmount.IsPositive()
	case DistanceTiered:
		return CountEnabled(draft.DistanceTiers) > 0
	case NeighborhoodTiered:
		return CountEnabled(draft.NeighborhoodTiers) > 0 && len(draft.ServedCities) > 0
	case UnknownModality:
		return false
	}
	return false
}

// CanSave is CanSaveModality for the config's own active modality.
func (c Config) CanSave() bool {
	return CanSaveModality(c.Modality, c)
}

// Validate checks the invariants that hold regardless of modality.
func (c Config) Validate() error {
	var errList []error

	if err := c.Modality.Validate(); err != nil {
		errList = append(errList, err)
	}
	if c.PrepTimeMinRange <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"prep time min range", fmt.Errorf("%d is not greater than 0", c.PrepTimeMinRange)))
	}
	if c.PrepTimeMaxRange < c.PrepTimeMinRange {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"prep time max range",
			fmt.Errorf("%d is lower than the min range %d", c.PrepTimeMaxRange, c.PrepTimeMinRange)))
	}
	if c.DeliveryRadiusKm < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"delivery radius", fmt.Errorf("%v is negative", c.DeliveryRadiusKm)))
	}
	for _, t := range c.DistanceTiers {
		if t.MaxDistanceKm <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"distance tier", fmt.Errorf("%s: max distance %v is not greater than 0", t.ID, t.MaxDistanceKm)))
		}
	}

	return errors.Join(errList...)
}

// Equal compares configs structurally; nil and empty slices are equal.
func (c Config) Equal(other Config) bool {
	return Diff(c, other).IsEmpty()
}
