package deliveryfee

import (
	"slices"

	"backoffice/internal/core/domain/model/kernel"
)

// Field names one top-level field of Config.
type Field string

const (
	FieldModality                     Field = "modality"
	FieldFlatFeeAmount                Field = "flatFeeAmount"
	FieldMinimumOrderValue            Field = "minimumOrderValue"
	FieldServedCities                 Field = "servedCities"
	FieldDistanceTiers                Field = "distanceTiers"
	FieldNeighborhoodTiers            Field = "neighborhoodTiers"
	FieldDefaultFeeOtherNeighborhoods Field = "defaultFeeOtherNeighborhoods"
	FieldDeliveryRadiusKm             Field = "deliveryRadiusKm"
	FieldPrepTimeMinRange             Field = "prepTimeMinRange"
	FieldPrepTimeMaxRange             Field = "prepTimeMaxRange"
)

// Patch is a partial Config: a nil field is unchanged.
type Patch struct {
	Modality                     *Modality
	FlatFeeAmount                *kernel.Money
	MinimumOrderValue            *kernel.Money
	ServedCities                 *[]string
	DistanceTiers                *[]DistanceTier
	NeighborhoodTiers            *[]NeighborhoodTier
	DefaultFeeOtherNeighborhoods *kernel.Money
	DeliveryRadiusKm             *float64
	PrepTimeMinRange             *int
	PrepTimeMaxRange             *int
}

// Diff returns the fields of draft that differ from snapshot. Slices are compared
// element by element, never by reference.
func Diff(snapshot, draft Config) Patch {
	var p Patch
	d := draft.Clone()

	if snapshot.Modality != d.Modality {
		p.Modality = &d.Modality
	}
	if !snapshot.FlatFeeAmount.Equal(d.FlatFeeAmount) {
		p.FlatFeeAmount = &d.FlatFeeAmount
	}
	if !snapshot.MinimumOrderValue.Equal(d.MinimumOrderValue) {
		p.MinimumOrderValue = &d.MinimumOrderValue
	}
	if !slices.Equal(snapshot.ServedCities, d.ServedCities) {
		p.ServedCities = &d.ServedCities
	}
	if !tiersEqual(snapshot.DistanceTiers, d.DistanceTiers) {
		p.DistanceTiers = &d.DistanceTiers
	}
	if !tiersEqual(snapshot.NeighborhoodTiers, d.NeighborhoodTiers) {
		p.NeighborhoodTiers = &d.NeighborhoodTiers
	}
	if !snapshot.DefaultFeeOtherNeighborhoods.Equal(d.DefaultFeeOtherNeighborhoods) {
		p.DefaultFeeOtherNeighborhoods = &d.DefaultFeeOtherNeighborhoods
	}
	if snapshot.DeliveryRadiusKm != d.DeliveryRadiusKm {
		p.DeliveryRadiusKm = &d.DeliveryRadiusKm
	}
	if snapshot.PrepTimeMinRange != d.PrepTimeMinRange {
		p.PrepTimeMinRange = &d.PrepTimeMinRange
	}
	if snapshot.PrepTimeMaxRange != d.PrepTimeMaxRange {
		p.PrepTimeMaxRange = &d.PrepTimeMaxRange
	}

	return p
}

// Fields lists the changed fields in declaration order.
func (p Patch) Fields() []Field {
	fields := make([]Field, 0)
	add := func(set bool, f Field) {
		if set {
			fields = append(fields, f)
		}
	}
	add(p.Modality != nil, FieldModality)
	add(p.FlatFeeAmount != nil, FieldFlatFeeAmount)
	add(p.MinimumOrderValue != nil, FieldMinimumOrderValue)
	add(p.ServedCities != nil, FieldServedCities)
	add(p.DistanceTiers != nil, FieldDistanceTiers)
	add(p.NeighborhoodTiers != nil, FieldNeighborhoodTiers)
	add(p.DefaultFeeOtherNeighborhoods != nil, FieldDefaultFeeOtherNeighborhoods)
	add(p.DeliveryRadiusKm != nil, FieldDeliveryRadiusKm)
	add(p.PrepTimeMinRange != nil, FieldPrepTimeMinRange)
	add(p.PrepTimeMaxRange != nil, FieldPrepTimeMaxRange)
	return fields
}

// IsEmpty reports that there is nothing to save.
func (p Patch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Apply returns cfg with the patched fields replaced.
func (p Patch) Apply(cfg Config) Config {
	out := cfg.Clone()
	if p.Modality != nil {
		out.Modality = *p.Modality
	}
	if p.FlatFeeAmount != nil {
		out.FlatFeeAmount = *p.FlatFeeAmount
	}
	if p.MinimumOrderValue != nil {
		out.MinimumOrderValue = *p.MinimumOrderValue
	}
	if p.ServedCities != nil {
		out.ServedCities = slices.Clone(*p.ServedCities)
	}
	if p.DistanceTiers != nil {
		out.DistanceTiers = slices.Clone(*p.DistanceTiers)
	}
	if p.NeighborhoodTiers != nil {
		out.NeighborhoodTiers = slices.Clone(*p.NeighborhoodTiers)
	}
	if p.DefaultFeeOtherNeighborhoods != nil {
		out.DefaultFeeOtherNeighborhoods = *p.DefaultFeeOtherNeighborhoods
	}
	if p.DeliveryRadiusKm != nil {
		out.DeliveryRadiusKm = *p.DeliveryRadiusKm
	}
	if p.PrepTimeMinRange != nil {
		out.PrepTimeMinRange = *p.PrepTimeMinRange
	}
	if p.PrepTimeMaxRange != nil {
		out.PrepTimeMaxRange = *p.PrepTimeMaxRange
	}
	return out
}
