package order

import (
	"errors"
	"fmt"
	"slices"

	"backoffice/internal/pkg/errs"
)

// ErrTargetFromHistory is returned by Status.Target for Reactivate: where a reactivated
// order goes is decided by its history, not by the table.
var ErrTargetFromHistory = errors.New("reactivation target is resolved from the status history")

// Action is one of the fixed buttons shown for an order.
type Action int

const (
	UnknownAction Action = iota
	Accept
	StartPrep
	MarkReady
	StartDelivery
	Complete
	Cancel
	Reactivate
)

func getActionCodes() map[Action]string {
	//nolint:exhaustive // UnknownAction has no code
	return map[Action]string{
		Accept:        "aceitar",
		StartPrep:     "iniciar_preparo",
		MarkReady:     "marcar_pronto",
		StartDelivery: "iniciar_entrega",
		Complete:      "concluir",
		Cancel:        "cancelar",
		Reactivate:    "reativar",
	}
}

// ActionFromCode parses the API code of an action.
func ActionFromCode(code string) (Action, error) {
	for a, c := range getActionCodes() {
		if c == code {
			return a, nil
		}
	}
	return UnknownAction, errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%q is not a known action", code))
}

func (a Action) Validate() error {
	if _, ok := getActionCodes()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

func (a Action) String() string {
	if code, ok := getActionCodes()[a]; ok {
		return code
	}
	return "unknown"
}

// MarshalText encodes the action as its code, so it travels as a JSON string.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes a code produced by MarshalText.
// Unknown codes fail with ErrValueIsInvalid.
func (a *Action) UnmarshalText(data []byte) error {
	parsed, err := ActionFromCode(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Actions lists the buttons available in status s, in display order.
func (s Status) Actions(deliveryType DeliveryType) []Action {
	switch s {
	case Pending:
		return []Action{Accept, Cancel}
	case Accepted:
		return []Action{StartPrep, Cancel}
	case Preparing:
		return []Action{MarkReady}
	case Ready:
		if deliveryType == Delivery {
			return []Action{StartDelivery}
		}
		return []Action{Complete}
	case OutForDelivery:
		return []Action{Complete}
	case Cancelled:
		return []Action{Reactivate}
	case Completed, Unknown:
		return nil
	}
	return nil
}

// Target resolves the status reached by running action from s.
func (s Status) Target(action Action, deliveryType DeliveryType) (Status, error) {
	if !slices.Contains(s.Actions(deliveryType), action) {
		return Unknown, errs.NewOperationNotAllowedError(action.String(), s.String())
	}

	switch action {
	case Accept:
		return Accepted, nil
	case StartPrep:
		return Preparing, nil
	case MarkReady:
		return Ready, nil
	case StartDelivery:
		return OutForDelivery, nil
	case Complete:
		return Completed, nil
	case Cancel:
		return Cancelled, nil
	case Reactivate:
		return Unknown, ErrTargetFromHistory
	case UnknownAction:
	}
	return Unknown, errs.NewOperationNotAllowedError(action.String(), s.String())
}

// Origin tells how a transition was requested.
type Origin int

const (
	// FixedAction is one of the buttons of the transition table.
	FixedAction Origin = iota
	// ManualChange is the generic "change status" form.
	ManualChange
)

// RequiresObservation reports whether a transition must carry a non-blank observation.
// Manual changes always do; so do cancellations (the reason) and reactivations.
func RequiresObservation(from, to Status, origin Origin) bool {
	if origin == ManualChange {
		return true
	}
	if to == Cancelled {
		return true
	}
	return from == Cancelled && to != Cancelled
}
