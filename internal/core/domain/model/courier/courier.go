package courier

import (
	"errors"

	"deliveryconnect/internal/core/domain/model/kernel"
	"deliveryconnect/internal/pkg/errs"
	"deliveryconnect/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a courier without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier registered on the marketplace.
// It is an aggregate root that manages identity, online presence and the
// last reported position.
//
// A courier starts offline with no known position. Going online makes the
// courier visible to commerces and starts the periodic position refresh;
// going offline hides the courier again. The position field holds only the
// most recent sample.
type Courier struct {
	id    kernel.UUID
	name  string
	phone string

	// Registration details shown to commerces before handing a package over.
	vehicleModel string
	licensePlate string

	online bool
	// position is the last reported location, nil until the first refresh.
	position *kernel.GeoPoint

	// totalDeliveries counts successful collections across the courier's lifetime.
	totalDeliveries int

	guard guard.ConstructorGuard
}

// NewCourier creates a Courier with the given identity.
// The courier starts offline, without a position and with a zero delivery
// counter. Name and phone are required; vehicle details are optional.
func NewCourier(id kernel.UUID, name string, phone string, vehicleModel string, licensePlate string) (*Courier, error) {
	c := &Courier{
		vehicleModel: vehicleModel,
		licensePlate: licensePlate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier from persistent storage, preserving
// presence, position and the delivery counter.
func RestoreCourier(
	id kernel.UUID,
	name string,
	phone string,
	vehicleModel string,
	licensePlate string,
	online bool,
	position *kernel.GeoPoint,
	totalDeliveries int,
) (*Courier, error) {
	c := &Courier{
		vehicleModel:    vehicleModel,
		licensePlate:    licensePlate,
		online:          online,
		totalDeliveries: totalDeliveries,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	if position != nil {
		if err := position.Validate(); err != nil {
			return nil, err
		}
		c.position = position
	}

	if totalDeliveries < 0 {
		return nil, errs.NewValueIsInvalidError("totalDeliveries")
	}

	return c, nil
}

// Validate ensures the Courier was constructed through NewCourier or RestoreCourier.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}

	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by identifier.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact phone.
func (c *Courier) Phone() string {
	return c.phone
}

// VehicleModel returns the registered vehicle model, possibly empty.
func (c *Courier) VehicleModel() string {
	return c.vehicleModel
}

// LicensePlate returns the registered license plate, possibly empty.
func (c *Courier) LicensePlate() string {
	return c.licensePlate
}

// IsOnline reports whether the courier is visible to commerces.
func (c *Courier) IsOnline() bool {
	return c.online
}

// Position returns the last reported location, or nil if none was reported yet.
func (c *Courier) Position() *kernel.GeoPoint {
	return c.position
}

// TotalDeliveries returns the lifetime count of successful collections.
func (c *Courier) TotalDeliveries() int {
	return c.totalDeliveries
}

// SetOnline toggles the courier's visibility to commerces.
// Going offline keeps the last known position; it simply stops being
// refreshed and the courier drops out of availability listings.
func (c *Courier) SetOnline(online bool) {
	c.online = online
}

// UpdatePosition overwrites the last known location with a fresh sample.
// Last write wins; there is no history.
func (c *Courier) UpdatePosition(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.position = &p
	return nil
}

// RecordDelivery increments the lifetime delivery counter.
// Called once per successful collection.
func (c *Courier) RecordDelivery() {
	c.totalDeliveries++
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}
