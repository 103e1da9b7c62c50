package order

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// DeliveryType tells whether the order is delivered or picked up at the counter.
type DeliveryType int

const (
	// UnknownDeliveryType (0) catches uninitialized values.
	UnknownDeliveryType DeliveryType = iota
	Delivery
	Pickup
)

func getDeliveryTypeCodes() map[DeliveryType]string {
	//nolint:exhaustive // UnknownDeliveryType has no code
	return map[DeliveryType]string{
		Delivery: "delivery",
		Pickup:   "pickup",
	}
}

// DeliveryTypeFromCode parses the persisted/API code of a delivery type.
//
// Parameters:
//   - code: "delivery" or "pickup"
//
// Returns:
//   - the matching DeliveryType
//   - ErrValueIsInvalid for any other code
func DeliveryTypeFromCode(code string) (DeliveryType, error) {
	for d, c := range getDeliveryTypeCodes() {
		if c == code {
			return d, nil
		}
	}
	return UnknownDeliveryType, errs.NewValueIsInvalidErrorWithCause(
		"delivery type is invalid", fmt.Errorf("%q is not a known delivery type", code))
}

// Validate rejects UnknownDeliveryType and out-of-range values.
func (d DeliveryType) Validate() error {
	if _, ok := getDeliveryTypeCodes()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery type is invalid", fmt.Errorf("%d is not valid", d))
	}
	return nil
}

func (d DeliveryType) String() string {
	if code, ok := getDeliveryTypeCodes()[d]; ok {
		return code
	}
	return "unknown"
}

// MarshalText encodes the delivery type as its code.
func (d DeliveryType) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a code produced by MarshalText.
func (d *DeliveryType) UnmarshalText(data []byte) error {
	parsed, err := DeliveryTypeFromCode(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// PaymentMethod is how the customer pays.
type PaymentMethod int

const (
	UnknownPaymentMethod PaymentMethod = iota
	Cash
	Pix
	CreditCard
	DebitCard
	MealVoucher
)

func getPaymentMethodCodes() map[PaymentMethod]string {
	//nolint:exhaustive // UnknownPaymentMethod has no code
	return map[PaymentMethod]string{
		Cash:        "dinheiro",
		Pix:         "pix",
		CreditCard:  "cartao_credito",
		DebitCard:   "cartao_debito",
		MealVoucher: "vale_refeicao",
	}
}

// PaymentMethodFromCode parses the persisted/API code of a payment method.
// Unknown codes fail with ErrValueIsInvalid.
func PaymentMethodFromCode(code string) (PaymentMethod, error) {
	for p, c := range getPaymentMethodCodes() {
		if c == code {
			return p, nil
		}
	}
	return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid", fmt.Errorf("%q is not a known payment method", code))
}

func (p PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodCodes()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method is invalid", fmt.Errorf("%d is not valid", p))
	}
	return nil
}

func (p PaymentMethod) String() string {
	if code, ok := getPaymentMethodCodes()[p]; ok {
		return code
	}
	return "unknown"
}

// MarshalText encodes the payment method as its code.
func (p PaymentMethod) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a code produced by MarshalText.
func (p *PaymentMethod) UnmarshalText(data []byte) error {
	parsed, err := PaymentMethodFromCode(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
