package deliveryfee

import (
	"errors"
	"slices"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
)

var (
	ErrOutsideDeliveryArea = errors.New("destination is outside the delivery area")
	ErrBelowMinimumOrder   = errors.New("order total is below the minimum order value")
	ErrDestinationRequired = errors.New("destination does not carry what the modality needs")
)

// Destination describes where an order goes. Distance-based modalities read
// DistanceKm, NeighborhoodTiered reads Neighborhood and City.
type Destination struct {
	DistanceKm   *float64
	Neighborhood string
	City         string
}

// Quote is the fee and preparation window that apply to one destination.
type Quote struct {
	Fee            kernel.Money `json:"fee"`
	MinPrepMinutes int          `json:"minPrepMinutes"`
	MaxPrepMinutes int          `json:"maxPrepMinutes"`
}

// Quote prices a delivery to dest for an order of orderTotal under the active modality.
func (c Config) Quote(dest Destination, orderTotal kernel.Money) (Quote, error) {
	if c.MinimumOrderValue.IsPositive() && orderTotal.LessThan(c.MinimumOrderValue) {
		return Quote{}, ErrBelowMinimumOrder
	}

	global := Quote{MinPrepMinutes: c.PrepTimeMinRange, MaxPrepMinutes: c.PrepTimeMaxRange}

	switch c.Modality {
	case NoFee, FlatFee:
		if err := c.checkRadius(dest); err != nil {
			return Quote{}, err
		}
		if c.Modality == FlatFee {
			global.Fee = c.FlatFeeAmount
		}
		return global, nil

	case DistanceTiered:
		if dest.DistanceKm == nil {
			return Quote{}, ErrDestinationRequired
		}
		for _, t := range c.sortedDistanceTiers() {
			if t.Enabled && *dest.DistanceKm <= t.MaxDistanceKm {
				return Quote{Fee: t.FeeAmount, MinPrepMinutes: t.MinPrepMinutes, MaxPrepMinutes: t.MaxPrepMinutes}, nil
			}
		}
		return Quote{}, ErrOutsideDeliveryArea

	case NeighborhoodTiered:
		if strings.TrimSpace(dest.Neighborhood) == "" || strings.TrimSpace(dest.City) == "" {
			return Quote{}, ErrDestinationRequired
		}
		if !c.servesCity(dest.City) {
			return Quote{}, ErrOutsideDeliveryArea
		}
		for _, t := range c.NeighborhoodTiers {
			if t.Enabled && t.matches(dest.Neighborhood, dest.City) {
				return Quote{Fee: t.FeeAmount, MinPrepMinutes: t.MinPrepMinutes, MaxPrepMinutes: t.MaxPrepMinutes}, nil
			}
		}
		if c.DefaultFeeOtherNeighborhoods.IsPositive() {
			global.Fee = c.DefaultFeeOtherNeighborhoods
			return global, nil
		}
		return Quote{}, ErrOutsideDeliveryArea

	case UnknownModality:
	}

	return Quote{}, c.Modality.Validate()
}

func (c Config) checkRadius(dest Destination) error {
	if c.DeliveryRadiusKm > 0 && dest.DistanceKm != nil && *dest.DistanceKm > c.DeliveryRadiusKm {
		return ErrOutsideDeliveryArea
	}
	return nil
}

func (c Config) servesCity(city string) bool {
	return slices.ContainsFunc(c.ServedCities, func(s string) bool {
		return strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(city))
	})
}

func (c Config) sortedDistanceTiers() []DistanceTier {
	tiers := slices.Clone(c.DistanceTiers)
	slices.SortStableFunc(tiers, byDistance)
	return tiers
}
