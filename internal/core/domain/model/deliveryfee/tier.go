package deliveryfee

import (
	"cmp"
	"slices"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
)

// DistanceTier charges FeeAmount for destinations up to MaxDistanceKm away.
type DistanceTier struct {
	ID             string       `json:"id"`
	MaxDistanceKm  float64      `json:"maxDistanceKm"`
	FeeAmount      kernel.Money `json:"feeAmount"`
	MinPrepMinutes int          `json:"minPrepMinutes"`
	MaxPrepMinutes int          `json:"maxPrepMinutes"`
	Enabled        bool         `json:"enabled"`
}

// NeighborhoodTier charges FeeAmount for one neighborhood of a served city.
type NeighborhoodTier struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	City           string       `json:"city"`
	FeeAmount      kernel.Money `json:"feeAmount"`
	MinPrepMinutes int          `json:"minPrepMinutes"`
	MaxPrepMinutes int          `json:"maxPrepMinutes"`
	Enabled        bool         `json:"enabled"`
}

// NeighborhoodTierInput is what the admin types when adding a neighborhood.
type NeighborhoodTierInput struct {
	Name      string
	City      string
	FeeAmount kernel.Money
}

// DistanceTierInput is what the admin types when adding a distance bracket.
type DistanceTierInput struct {
	MaxDistanceKm float64
	FeeAmount     kernel.Money
}

type tier[T any] interface {
	TierID() string
	IsEnabled() bool
	withEnabled(enabled bool) T
	Equal(other T) bool
}

func (t DistanceTier) TierID() string  { return t.ID }
func (t DistanceTier) IsEnabled() bool { return t.Enabled }

func (t DistanceTier) withEnabled(enabled bool) DistanceTier {
	t.Enabled = enabled
	return t
}

func (t DistanceTier) Equal(other DistanceTier) bool {
	return t.ID == other.ID &&
		t.MaxDistanceKm == other.MaxDistanceKm &&
		t.FeeAmount.Equal(other.FeeAmount) &&
		t.MinPrepMinutes == other.MinPrepMinutes &&
		t.MaxPrepMinutes == other.MaxPrepMinutes &&
		t.Enabled == other.Enabled
}

func (t NeighborhoodTier) TierID() string  { return t.ID }
func (t NeighborhoodTier) IsEnabled() bool { return t.Enabled }

func (t NeighborhoodTier) withEnabled(enabled bool) NeighborhoodTier {
	t.Enabled = enabled
	return t
}

func (t NeighborhoodTier) Equal(other NeighborhoodTier) bool {
	return t.ID == other.ID &&
		t.Name == other.Name &&
		t.City == other.City &&
		t.FeeAmount.Equal(other.FeeAmount) &&
		t.MinPrepMinutes == other.MinPrepMinutes &&
		t.MaxPrepMinutes == other.MaxPrepMinutes &&
		t.Enabled == other.Enabled
}

// matches compares neighborhood and city ignoring case and surrounding blanks.
func (t NeighborhoodTier) matches(name, city string) bool {
	return strings.EqualFold(strings.TrimSpace(t.Name), strings.TrimSpace(name)) &&
		strings.EqualFold(strings.TrimSpace(t.City), strings.TrimSpace(city))
}

// ToggleTierStatus flips Enabled of the tier with the given id. Nothing else changes.
func ToggleTierStatus[T tier[T]](tiers []T, id string) []T {
	out := slices.Clone(tiers)
	for i, t := range out {
		if t.TierID() == id {
			out[i] = t.withEnabled(!t.IsEnabled())
		}
	}
	return out
}

// RemoveTier drops the tier with the given id.
func RemoveTier[T tier[T]](tiers []T, id string) []T {
	out := make([]T, 0, len(tiers))
	for _, t := range tiers {
		if t.TierID() != id {
			out = append(out, t)
		}
	}
	return out
}

// CountEnabled returns how many tiers are enabled.
func CountEnabled[T tier[T]](tiers []T) int {
	n := 0
	for _, t := range tiers {
		if t.IsEnabled() {
			n++
		}
	}
	return n
}

func containsTier[T tier[T]](tiers []T, id string) bool {
	return slices.ContainsFunc(tiers, func(t T) bool { return t.TierID() == id })
}

func tiersEqual[T tier[T]](a, b []T) bool {
	return slices.EqualFunc(a, b, func(x, y T) bool { return x.Equal(y) })
}

// AddNeighborhoodTier appends an enabled tier with a fresh presentation id and the
// draft's global prep range. Blank name or city leaves the draft untouched and
// reports false.
func AddNeighborhoodTier(draft Config, in NeighborhoodTierInput) (Config, bool) {
	name := strings.TrimSpace(in.Name)
	city := strings.TrimSpace(in.City)
	if name == "" || city == "" {
		return draft, false
	}

	out := draft.Clone()
	out.NeighborhoodTiers = append(out.NeighborhoodTiers, NeighborhoodTier{
		ID:             newTierID(),
		Name:           name,
		City:           city,
		FeeAmount:      in.FeeAmount,
		MinPrepMinutes: draft.PrepTimeMinRange,
		MaxPrepMinutes: draft.PrepTimeMaxRange,
		Enabled:        true,
	})
	return out, true
}

// AddDistanceTier inserts an enabled bracket keeping tiers ordered by distance.
// A non-positive distance or one already covered by another bracket is rejected.
func AddDistanceTier(draft Config, in DistanceTierInput) (Config, bool) {
	if in.MaxDistanceKm <= 0 {
		return draft, false
	}
	if slices.ContainsFunc(draft.DistanceTiers, func(t DistanceTier) bool {
		return t.MaxDistanceKm == in.MaxDistanceKm
	}) {
		return draft, false
	}

	out := draft.Clone()
	out.DistanceTiers = append(out.DistanceTiers, DistanceTier{
		ID:             newTierID(),
		MaxDistanceKm:  in.MaxDistanceKm,
		FeeAmount:      in.FeeAmount,
		MinPrepMinutes: draft.PrepTimeMinRange,
		MaxPrepMinutes: draft.PrepTimeMaxRange,
		Enabled:        true,
	})
	slices.SortStableFunc(out.DistanceTiers, byDistance)
	return out, true
}

func byDistance(a, b DistanceTier) int {
	return cmp.Compare(a.MaxDistanceKm, b.MaxDistanceKm)
}

// newTierID only has to be unique within one draft; it is not a persistence key.
func newTierID() string {
	return kernel.NewUUID().String()
}
