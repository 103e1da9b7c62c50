package order

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Accepted ──> Preparing ──> Ready ──┬──> OutForDelivery ──> Completed
//	   │           │                               └──────(pickup)───────> Completed
//	   └───────────┴──> Cancelled ──(reactivate)──> status before cancellation
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	Pending
	Accepted
	Preparing
	Ready
	OutForDelivery
	Completed
	Cancelled
)

func getStatusCodes() map[Status]string {
	//nolint:exhaustive // Unknown has no code
	return map[Status]string{
		Pending:        "pendente",
		Accepted:       "aceito",
		Preparing:      "preparo",
		Ready:          "pronto",
		OutForDelivery: "entrega",
		Completed:      "concluido",
		Cancelled:      "cancelado",
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Accepted, Preparing, Ready, OutForDelivery, Completed, Cancelled}
}

// StatusFromCode parses the persisted/API code of a status.
func StatusFromCode(code string) (Status, error) {
	for s, c := range getStatusCodes() {
		if c == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a known status", code))
}

// Validate checks if the Status value is one of the lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status code, or "unknown" for invalid values.
func (s Status) String() string {
	if code, ok := getStatusCodes()[s]; ok {
		return code
	}
	return "unknown"
}

// MarshalText encodes the status as its code, so it travels as a JSON string.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a code produced by MarshalText.
// Unknown codes fail with ErrValueIsInvalid.
func (s *Status) UnmarshalText(data []byte) error {
	parsed, err := StatusFromCode(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// IsTerminal reports whether no fixed action leads further. Cancelled is terminal
// too, except for reactivation.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanCancel reports whether the order may still be cancelled.
func (s Status) CanCancel() bool {
	return s.Validate() == nil && !s.IsTerminal()
}
