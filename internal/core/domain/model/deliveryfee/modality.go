package deliveryfee

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Modality is the pricing strategy used for delivery.
type Modality int

const (
	// UnknownModality is the zero value and is never savable.
	UnknownModality Modality = iota
	NoFee
	FlatFee
	DistanceTiered
	NeighborhoodTiered
)

func modalityCodes() map[Modality]string {
	//nolint:exhaustive // UnknownModality has no code
	return map[Modality]string{
		NoFee:              "sem_taxa",
		FlatFee:            "taxa_fixa",
		DistanceTiered:     "taxa_distancia",
		NeighborhoodTiered: "taxa_bairro",
	}
}

// ModalityFromCode parses the persisted/API code of a modality.
func ModalityFromCode(code string) (Modality, error) {
	for m, c := range modalityCodes() {
		if c == code {
			return m, nil
		}
	}
	return UnknownModality, errs.NewValueIsInvalidErrorWithCause(
		"modality",
		fmt.Errorf("%q is not a known modality", code),
	)
}

// Validate fails for UnknownModality and out of range values.
func (m Modality) Validate() error {
	if _, ok := modalityCodes()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("modality", fmt.Errorf("%d is not a valid modality", m))
	}
	return nil
}

// String returns the modality code, or "unknown".
func (m Modality) String() string {
	if code, ok := modalityCodes()[m]; ok {
		return code
	}
	return "unknown"
}

func (m Modality) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Modality) UnmarshalText(data []byte) error {
	parsed, err := ModalityFromCode(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
