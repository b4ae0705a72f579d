package delivery

import (
	"errors"
	"fmt"
	"math"
	"time"

	"deliveryconnect/internal/core/domain/model/kernel"
	"deliveryconnect/internal/pkg/errs"
	"deliveryconnect/internal/pkg/guard"
)

const (
	// EarningRate is the share of the delivery value paid to the courier,
	// fixed at creation time and never recomputed.
	EarningRate = 0.7

	// estimatedArrivalOffset is the window quoted to the commerce when a
	// courier collects a delivery.
	estimatedArrivalOffset = 30 * time.Minute

	// estimatedArrivalLayout renders the quoted arrival as a local time string.
	estimatedArrivalLayout = "15:04:05"
)

// Domain errors for delivery operations.
var (
	// ErrDeliveryIsNotConstructed is returned when using an improperly
	// initialized Delivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
	// ErrAddressIsRequired is returned when creating a delivery without a destination address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrCommerceNameIsRequired is returned when creating a delivery without the commerce display name.
	ErrCommerceNameIsRequired = errs.NewValueIsRequiredError("commerceName")
	// ErrCourierNameIsRequired is returned when collecting a delivery without the courier name.
	ErrCourierNameIsRequired = errs.NewValueIsRequiredError("courierName")
)

// Delivery is the aggregate root of the marketplace. A commerce creates it in
// Pending status; a courier claims it by scanning its handoff code, which
// moves it through Collected and InProgress to Completed.
//
// Invariants:
//   - the identifier is immutable and unique within the delivery collection
//   - motoboyEarning equals round(value * 0.7, 2) computed once at creation
//   - courier identity fields are unset until a successful collection
//   - transitions are strictly forward; each transition method validates the
//     current status before touching any field, so a failed operation leaves
//     the aggregate unchanged
type Delivery struct {
	id           ID
	commerceID   kernel.UUID
	commerceName string
	address      string
	description  string

	// value is the order value; motoboyEarning is its fixed 70% share,
	// both in currency units rounded to cents.
	value          float64
	motoboyEarning float64

	status    Status
	createdAt time.Time

	// Courier identity, attached by Collect. Nil/empty while pending.
	motoboyID    *kernel.UUID
	motoboyName  string
	motoboyPhone string

	collectedAt      *time.Time
	estimatedArrival string
	completedAt      *time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates a Delivery in Pending status.
//
// Validation rules:
//   - commerceID must be a valid UUID
//   - commerceName and address must be non-empty
//   - value must be a positive finite number
//
// The courier earning is derived here as round(value*0.7, 2) and stays fixed
// for the life of the record. The description is optional free text.
func NewDelivery(
	id ID,
	commerceID kernel.UUID,
	commerceName string,
	address string,
	description string,
	value float64,
	createdAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		description: description,
		status:      Pending,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setCommerceID(commerceID),
		d.setCommerceName(commerceName),
		d.setAddress(address),
		d.setValue(value),
	); err != nil {
		return nil, err
	}

	d.motoboyEarning = roundToCents(d.value * EarningRate)

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistent storage, preserving
// the persisted status, courier identity and timestamps. The earning is taken
// as stored rather than recomputed.
func RestoreDelivery(
	id ID,
	commerceID kernel.UUID,
	commerceName string,
	address string,
	description string,
	value float64,
	motoboyEarning float64,
	status Status,
	createdAt time.Time,
	motoboyID *kernel.UUID,
	motoboyName string,
	motoboyPhone string,
	collectedAt *time.Time,
	estimatedArrival string,
	completedAt *time.Time,
) (*Delivery, error) {
	d := &Delivery{
		description:      description,
		createdAt:        createdAt,
		motoboyName:      motoboyName,
		motoboyPhone:     motoboyPhone,
		collectedAt:      collectedAt,
		estimatedArrival: estimatedArrival,
		completedAt:      completedAt,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setCommerceID(commerceID),
		d.setCommerceName(commerceName),
		d.setAddress(address),
		d.setValue(value),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	if motoboyID != nil {
		if err := motoboyID.Validate(); err != nil {
			return nil, err
		}
		d.motoboyID = motoboyID
	}

	d.motoboyEarning = roundToCents(motoboyEarning)

	return d, nil
}

// Validate ensures the Delivery was constructed through NewDelivery or
// RestoreDelivery. Called by repositories before persisting.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}

	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by identifier.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery identifier.
func (d *Delivery) ID() ID {
	return d.id
}

// CommerceID returns the identifier of the commerce that created the delivery.
func (d *Delivery) CommerceID() kernel.UUID {
	return d.commerceID
}

// CommerceName returns the commerce display name.
func (d *Delivery) CommerceName() string {
	return d.commerceName
}

// Address returns the destination address.
func (d *Delivery) Address() string {
	return d.address
}

// Description returns the optional free-text description.
func (d *Delivery) Description() string {
	return d.description
}

// Value returns the delivery value.
func (d *Delivery) Value() float64 {
	return d.value
}

// MotoboyEarning returns the courier earning fixed at creation.
func (d *Delivery) MotoboyEarning() float64 {
	return d.motoboyEarning
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// Motoboy returns the assigned courier's ID, or nil before collection.
func (d *Delivery) Motoboy() *kernel.UUID {
	return d.motoboyID
}

// MotoboyName returns the assigned courier's name, empty before collection.
func (d *Delivery) MotoboyName() string {
	return d.motoboyName
}

// MotoboyPhone returns the assigned courier's phone, empty before collection.
func (d *Delivery) MotoboyPhone() string {
	return d.motoboyPhone
}

// CollectedAt returns the collection timestamp, or nil before collection.
func (d *Delivery) CollectedAt() *time.Time {
	return d.collectedAt
}

// EstimatedArrival returns the quoted arrival display string, empty before collection.
func (d *Delivery) EstimatedArrival() string {
	return d.estimatedArrival
}

// CompletedAt returns the completion timestamp, or nil before completion.
func (d *Delivery) CompletedAt() *time.Time {
	return d.completedAt
}

// Collect claims the delivery for a courier after a successful handoff scan.
//
// Business rules:
//   - only a Pending delivery can be collected; anything else fails with an
//     invalid-state error and leaves the aggregate untouched
//   - courier ID must be valid and courier name non-empty
//
// On success the status becomes Collected, the courier identity is attached,
// the collection timestamp is recorded and the estimated arrival is quoted as
// now plus thirty minutes, formatted as a local time string.
func (d *Delivery) Collect(
	courierID kernel.UUID,
	courierName string,
	courierPhone string,
	now time.Time,
) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if courierName == "" {
		return ErrCourierNameIsRequired
	}

	newStatus, err := d.status.Collect()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.motoboyID = &courierID
	d.motoboyName = courierName
	d.motoboyPhone = courierPhone
	collectedAt := now
	d.collectedAt = &collectedAt
	d.estimatedArrival = now.Add(estimatedArrivalOffset).Format(estimatedArrivalLayout)

	return nil
}

// StartTransit marks a collected delivery as en route.
// Valid only from Collected status.
func (d *Delivery) StartTransit() error {
	newStatus, err := d.status.StartTransit()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Complete marks the delivery as delivered.
//
// Valid only from InProgress status; records the completion timestamp.
// Completed is a final state, so a second call fails with an invalid-state
// error. The earning is not touched.
func (d *Delivery) Complete(now time.Time) error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	completedAt := now
	d.completedAt = &completedAt
	return nil
}

func (d *Delivery) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setCommerceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.commerceID = id
	return nil
}

func (d *Delivery) setCommerceName(name string) error {
	if name == "" {
		return ErrCommerceNameIsRequired
	}
	d.commerceName = name
	return nil
}

func (d *Delivery) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	d.address = address
	return nil
}

func (d *Delivery) setValue(value float64) error {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidErrorWithCause("value",
			fmt.Errorf("%v is not a positive number", value))
	}
	d.value = roundToCents(value)
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

// roundToCents rounds a monetary amount to 2 decimal places.
func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
