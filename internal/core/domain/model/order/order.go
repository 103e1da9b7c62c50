package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is a customer order of one establishment. It is created by the checkout flow
// and afterwards only changes through status transitions, each producing a HistoryEntry.
type Order struct {
	id              kernel.UUID
	establishmentID kernel.UUID
	number          int
	trackingCode    string
	deliveryType    DeliveryType
	paymentMethod   PaymentMethod
	total           kernel.Money
	status          Status

	createdAt    time.Time
	acceptedAt   *time.Time
	preppedAt    *time.Time
	readyAt      *time.Time
	deliveringAt *time.Time
	completedAt  *time.Time
	cancelledAt  *time.Time

	cancellationReason *string

	isConstructed bool
}

// NewOrder creates a pending order.
func NewOrder(
	id, establishmentID kernel.UUID,
	number int,
	trackingCode string,
	deliveryType DeliveryType,
	paymentMethod PaymentMethod,
	total kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		total:         total,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setEstablishmentID(establishmentID),
		o.setNumber(number),
		o.setTrackingCode(trackingCode),
		o.setDeliveryType(deliveryType),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreParams carries every persisted field of an order.
type RestoreParams struct {
	ID                 kernel.UUID
	EstablishmentID    kernel.UUID
	Number             int
	TrackingCode       string
	DeliveryType       DeliveryType
	PaymentMethod      PaymentMethod
	Total              kernel.Money
	Status             Status
	CreatedAt          time.Time
	AcceptedAt         *time.Time
	PreppedAt          *time.Time
	ReadyAt            *time.Time
	DeliveringAt       *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason *string
}

// RestoreOrder rebuilds an order loaded from persistence.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o, err := NewOrder(p.ID, p.EstablishmentID, p.Number, p.TrackingCode,
		p.DeliveryType, p.PaymentMethod, p.Total, p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := p.Status.Validate(); err != nil {
		return nil, err
	}

	o.status = p.Status
	o.acceptedAt = p.AcceptedAt
	o.preppedAt = p.PreppedAt
	o.readyAt = p.ReadyAt
	o.deliveringAt = p.DeliveringAt
	o.completedAt = p.CompletedAt
	o.cancelledAt = p.CancelledAt
	o.cancellationReason = p.CancellationReason
	return o, nil
}

// Validate checks that the order was built by NewOrder or RestoreOrder.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed for a nil or zero-value order
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// EstablishmentID returns the establishment the order belongs to.
func (o *Order) EstablishmentID() kernel.UUID {
	return o.establishmentID
}

// Number returns the sequential order number shown to the operator.
func (o *Order) Number() int {
	return o.number
}

// TrackingCode returns the code the customer uses to follow the order.
func (o *Order) TrackingCode() string {
	return o.trackingCode
}

// DeliveryType returns whether the order is delivered or picked up.
func (o *Order) DeliveryType() DeliveryType {
	return o.deliveryType
}

// PaymentMethod returns how the customer pays.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Total returns the order total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AcceptedAt returns when the order last entered Accepted, or nil.
func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// PreppedAt returns when preparation last started, or nil.
func (o *Order) PreppedAt() *time.Time {
	return o.preppedAt
}

// ReadyAt returns when the order became ready, or nil.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// DeliveringAt returns when the order left for delivery, or nil.
// Pickup orders never set it.
func (o *Order) DeliveringAt() *time.Time {
	return o.deliveringAt
}

// CompletedAt returns when the order was completed, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// CancelledAt returns when the order was cancelled.
// Returns nil unless the order is currently cancelled.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// CancellationReason returns the reason given on cancellation.
// Returns nil unless the order is currently cancelled.
func (o *Order) CancellationReason() *string {
	return o.cancellationReason
}

// AvailableActions returns the actions the operator can take from the current
// status, in display order. The list depends on the delivery type.
func (o *Order) AvailableActions() []Action {
	return o.status.Actions(o.deliveryType)
}

// Execute runs one of the fixed actions of the transition table. Cancel takes the
// observation as its reason; Reactivate needs the history and goes through Reactivate.
func (o *Order) Execute(action Action, actorID kernel.UUID, observation string, now time.Time) (HistoryEntry, error) {
	target, err := o.status.Target(action, o.deliveryType)
	if err != nil {
		return HistoryEntry{}, err
	}
	if target == Cancelled {
		return o.Cancel(observation, actorID, now)
	}
	return o.moveTo(target, actorID, observation, now), nil
}

// Cancel moves the order to Cancelled. The reason is mandatory.
func (o *Order) Cancel(reason string, actorID kernel.UUID, now time.Time) (HistoryEntry, error) {
	if strings.TrimSpace(reason) == "" {
		return HistoryEntry{}, errs.NewValueIsRequiredError("cancellation reason")
	}
	if !o.status.CanCancel() {
		return HistoryEntry{}, errs.NewOperationNotAllowedError(Cancel.String(), o.status.String())
	}

	entry := o.moveTo(Cancelled, actorID, reason, now)
	trimmed := strings.TrimSpace(reason)
	o.cancellationReason = &trimmed
	return entry, nil
}

// Reactivate brings a cancelled order back to target, normally the status it had
// before the cancellation. The observation is mandatory.
func (o *Order) Reactivate(target Status, actorID kernel.UUID, observation string, now time.Time) (HistoryEntry, error) {
	if strings.TrimSpace(observation) == "" {
		return HistoryEntry{}, errs.NewValueIsRequiredError("observation")
	}
	if o.status != Cancelled {
		return HistoryEntry{}, errs.NewOperationNotAllowedError(Reactivate.String(), o.status.String())
	}
	if err := target.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if target == Cancelled {
		return HistoryEntry{}, errs.NewValueIsInvalidErrorWithCause(
			"reactivation target", fmt.Errorf("%s is the current status", target))
	}

	entry := o.moveTo(target, actorID, observation, now)
	o.cancelledAt = nil
	o.cancellationReason = nil
	return entry, nil
}

// ChangeStatus is the generic path: any valid status other than the current one, always
// with an observation. Moving to Cancelled is a cancellation, moving out of it a reactivation.
func (o *Order) ChangeStatus(target Status, actorID kernel.UUID, observation string, now time.Time) (HistoryEntry, error) {
	if err := target.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if target == o.status {
		return HistoryEntry{}, errs.NewOperationNotAllowedErrorWithCause(
			"change status", o.status.String(), fmt.Errorf("order is already %s", target))
	}
	if RequiresObservation(o.status, target, ManualChange) && strings.TrimSpace(observation) == "" {
		return HistoryEntry{}, errs.NewValueIsRequiredError("observation")
	}

	switch {
	case target == Cancelled:
		return o.Cancel(observation, actorID, now)
	case o.status == Cancelled:
		return o.Reactivate(target, actorID, observation, now)
	default:
		return o.moveTo(target, actorID, observation, now), nil
	}
}

func (o *Order) moveTo(target Status, actorID kernel.UUID, observation string, now time.Time) HistoryEntry {
	entry := newHistoryEntry(o.id, o.status, target, actorID, observation, now)
	o.status = target
	o.stamp(target, now)
	return entry
}

// stamp records when the order entered a phase.
func (o *Order) stamp(s Status, now time.Time) {
	at := now
	switch s {
	case Accepted:
		o.acceptedAt = &at
	case Preparing:
		o.preppedAt = &at
	case Ready:
		o.readyAt = &at
	case OutForDelivery:
		o.deliveringAt = &at
	case Completed:
		o.completedAt = &at
	case Cancelled:
		o.cancelledAt = &at
	case Pending, Unknown:
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setEstablishmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.establishmentID = id
	return nil
}

func (o *Order) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("number is invalid", fmt.Errorf("%d is not greater than 0", number))
	}
	o.number = number
	return nil
}

func (o *Order) setTrackingCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("tracking code")
	}
	o.trackingCode = code
	return nil
}

func (o *Order) setDeliveryType(d DeliveryType) error {
	if err := d.Validate(); err != nil {
		return err
	}
	o.deliveryType = d
	return nil
}

func (o *Order) setPaymentMethod(p PaymentMethod) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.paymentMethod = p
	return nil
}
