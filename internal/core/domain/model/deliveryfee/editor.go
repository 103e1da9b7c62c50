package deliveryfee

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var (
	ErrEditorIsNotConstructed = errors.New("Editor must be created via NewEditor or RestoreEditor")

	// ErrEditRejected is returned by an Edit that left the draft unchanged.
	ErrEditRejected = errors.New("draft edit rejected")
)

// Edit is one user change applied to a draft.
type Edit func(draft Config) (Config, error)

// Editor holds the draft/snapshot pair of one editing session. The draft is never
// persisted implicitly; MarkSaved must be called after a successful save.
type Editor struct {
	snapshot Config
	draft    Config

	guard guard.ConstructorGuard
}

// NewEditor starts a session from the persisted config.
func NewEditor(saved Config) *Editor {
	return &Editor{
		snapshot: saved.Clone(),
		draft:    saved.Clone(),
		guard:    guard.NewConstructorGuard(),
	}
}

// RestoreEditor rebuilds a session kept in a draft store.
func RestoreEditor(snapshot, draft Config) *Editor {
	return &Editor{
		snapshot: snapshot.Clone(),
		draft:    draft.Clone(),
		guard:    guard.NewConstructorGuard(),
	}
}

func (e *Editor) Validate() error {
	if e == nil {
		return ErrEditorIsNotConstructed
	}
	return e.guard.Validate(ErrEditorIsNotConstructed)
}

func (e *Editor) Snapshot() Config {
	return e.snapshot.Clone()
}

func (e *Editor) Draft() Config {
	return e.draft.Clone()
}

// Apply runs edit against the draft. The draft is only replaced when edit succeeds.
func (e *Editor) Apply(edit Edit) error {
	next, err := edit(e.draft.Clone())
	if err != nil {
		return err
	}
	e.draft = next
	return nil
}

// CanSave gates the save action for the draft's active modality.
func (e *Editor) CanSave() bool {
	return CanSaveModality(e.draft.Modality, e.draft)
}

// PendingChanges is the diff between snapshot and draft.
func (e *Editor) PendingChanges() Patch {
	return Diff(e.snapshot, e.draft)
}

// MarkSaved makes the current draft the new snapshot.
func (e *Editor) MarkSaved() {
	e.snapshot = e.draft.Clone()
}

// Reset drops unsaved changes.
func (e *Editor) Reset() {
	e.draft = e.snapshot.Clone()
}

// Settings carries the scalar fields of the form; nil means unchanged.
type Settings struct {
	Modality                     *Modality
	FlatFeeAmount                *kernel.Money
	MinimumOrderValue            *kernel.Money
	DefaultFeeOtherNeighborhoods *kernel.Money
	DeliveryRadiusKm             *float64
	PrepTimeMinRange             *int
	PrepTimeMaxRange             *int
}

// ChangeSettings switches modality and updates scalar fields. Data of the other
// modalities is kept so it is there again when the admin switches back.
func ChangeSettings(s Settings) Edit {
	return func(draft Config) (Config, error) {
		if s.Modality != nil {
			if err := s.Modality.Validate(); err != nil {
				return draft, fmt.Errorf("%w: %w", ErrEditRejected, err)
			}
			draft.Modality = *s.Modality
		}
		if s.DeliveryRadiusKm != nil {
			if *s.DeliveryRadiusKm < 0 {
				return draft, fmt.Errorf("%w: delivery radius %v is negative", ErrEditRejected, *s.DeliveryRadiusKm)
			}
			draft.DeliveryRadiusKm = *s.DeliveryRadiusKm
		}
		if s.FlatFeeAmount != nil {
			draft.FlatFeeAmount = *s.FlatFeeAmount
		}
		if s.MinimumOrderValue != nil {
			draft.MinimumOrderValue = *s.MinimumOrderValue
		}
		if s.DefaultFeeOtherNeighborhoods != nil {
			draft.DefaultFeeOtherNeighborhoods = *s.DefaultFeeOtherNeighborhoods
		}
		if s.PrepTimeMinRange != nil {
			draft.PrepTimeMinRange = *s.PrepTimeMinRange
		}
		if s.PrepTimeMaxRange != nil {
			draft.PrepTimeMaxRange = *s.PrepTimeMaxRange
		}
		return draft, nil
	}
}

// AddCityEdit adds a served city.
func AddCityEdit(name string) Edit {
	return func(draft Config) (Config, error) {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return draft, fmt.Errorf("%w: city name is blank", ErrEditRejected)
		}
		if slices.Contains(draft.ServedCities, trimmed) {
			return draft, fmt.Errorf("%w: city %q is already served", ErrEditRejected, trimmed)
		}
		draft.ServedCities = AddCity(draft.ServedCities, trimmed)
		return draft, nil
	}
}

// RemoveCityEdit removes a served city. Tiers of that city are kept.
func RemoveCityEdit(name string) Edit {
	return func(draft Config) (Config, error) {
		if !slices.Contains(draft.ServedCities, strings.TrimSpace(name)) {
			return draft, fmt.Errorf("%w: city %q is not served", ErrEditRejected, name)
		}
		draft.ServedCities = RemoveCity(draft.ServedCities, name)
		return draft, nil
	}
}

// AddNeighborhoodTierEdit adds a neighborhood tier.
func AddNeighborhoodTierEdit(in NeighborhoodTierInput) Edit {
	return func(draft Config) (Config, error) {
		next, ok := AddNeighborhoodTier(draft, in)
		if !ok {
			return draft, fmt.Errorf("%w: neighborhood name and city are required", ErrEditRejected)
		}
		return next, nil
	}
}

// AddDistanceTierEdit adds a distance bracket.
func AddDistanceTierEdit(in DistanceTierInput) Edit {
	return func(draft Config) (Config, error) {
		next, ok := AddDistanceTier(draft, in)
		if !ok {
			return draft, fmt.Errorf(
				"%w: max distance %v must be positive and not already configured", ErrEditRejected, in.MaxDistanceKm)
		}
		return next, nil
	}
}

// ToggleTierEdit flips a distance or neighborhood tier, whichever owns the id.
func ToggleTierEdit(id string) Edit {
	return func(draft Config) (Config, error) {
		switch {
		case containsTier(draft.DistanceTiers, id):
			draft.DistanceTiers = ToggleTierStatus(draft.DistanceTiers, id)
		case containsTier(draft.NeighborhoodTiers, id):
			draft.NeighborhoodTiers = ToggleTierStatus(draft.NeighborhoodTiers, id)
		default:
			return draft, fmt.Errorf("%w: tier %q not found", ErrEditRejected, id)
		}
		return draft, nil
	}
}

// RemoveTierEdit removes a distance or neighborhood tier, whichever owns the id.
func RemoveTierEdit(id string) Edit {
	return func(draft Config) (Config, error) {
		switch {
		case containsTier(draft.DistanceTiers, id):
			draft.DistanceTiers = RemoveTier(draft.DistanceTiers, id)
		case containsTier(draft.NeighborhoodTiers, id):
			draft.NeighborhoodTiers = RemoveTier(draft.NeighborhoodTiers, id)
		default:
			return draft, fmt.Errorf("%w: tier %q not found", ErrEditRejected, id)
		}
		return draft, nil
	}
}

// View is what the admin sees after every edit.
type View struct {
	Draft          Config  `json:"draft"`
	Snapshot       Config  `json:"snapshot"`
	CanSave        bool    `json:"canSave"`
	PendingChanges []Field `json:"pendingChanges"`
}

func (e *Editor) View() View {
	return View{
		Draft:          e.Draft(),
		Snapshot:       e.Snapshot(),
		CanSave:        e.CanSave(),
		PendingChanges: e.PendingChanges().Fields(),
	}
}
