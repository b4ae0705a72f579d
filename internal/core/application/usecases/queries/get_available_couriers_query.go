// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"deliveryconnect/internal/core/domain/model/kernel"
	"deliveryconnect/internal/pkg/errs"
	"deliveryconnect/internal/pkg/guard"
)

var ErrGetAvailableCouriersQueryIsNotConstructed = errors.New(
	"GetAvailableCouriersQuery must be created via NewGetAvailableCouriersQuery constructor",
)

// GetAvailableCouriersQuery retrieves the online couriers visible to a
// commerce, ranked by distance from the commerce location.
//
// Example:
//
//	origin, _ := kernel.NewGeoPoint(-23.5505, -46.6333)
//	query, _ := NewGetAvailableCouriersQuery(origin)
//	couriers, err := handler.Handle(ctx, query)
type GetAvailableCouriersQuery struct {
	origin kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewGetAvailableCouriersQuery creates a query for available couriers around
// the given commerce location.
func NewGetAvailableCouriersQuery(origin kernel.GeoPoint) (GetAvailableCouriersQuery, error) {
	if err := origin.Validate(); err != nil {
		return GetAvailableCouriersQuery{}, errs.NewValueIsRequiredErrorWithCause("origin", err)
	}

	return GetAvailableCouriersQuery{
		origin: origin,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Origin returns the commerce location distances are measured from.
func (q GetAvailableCouriersQuery) Origin() kernel.GeoPoint {
	return q.origin
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableCouriersQueryIsNotConstructed if validation fails.
func (q GetAvailableCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableCouriersQueryIsNotConstructed)
}

// GetAvailableCouriersQueryResponse is one ranked courier in the read model.
// Distance holds the human-readable label ("850m", "2.5km"); couriers with no
// known position sort last and report HasDistance=false with an empty label.
type GetAvailableCouriersQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Phone           string
	VehicleModel    string
	LicensePlate    string
	TotalDeliveries int
	Position        *kernel.GeoPoint
	DistanceKm      float64
	HasDistance     bool
	Distance        string
}
