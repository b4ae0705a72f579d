package queries

import (
	"errors"
	"time"

	"deliveryconnect/internal/core/domain/model/kernel"
	"deliveryconnect/internal/pkg/errs"
	"deliveryconnect/internal/pkg/guard"
)

var ErrGetCourierDeliveriesQueryIsNotConstructed = errors.New(
	"GetCourierDeliveriesQuery must be created via NewGetCourierDeliveriesQuery constructor",
)

// GetCourierDeliveriesQuery retrieves a courier's active and completed
// deliveries together with earnings totals. Backs the courier dashboard.
type GetCourierDeliveriesQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierDeliveriesQuery creates a query for a courier's deliveries.
func NewGetCourierDeliveriesQuery(courierID kernel.UUID) (GetCourierDeliveriesQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierDeliveriesQuery{}, errs.NewValueIsRequiredErrorWithCause("courierID", err)
	}

	return GetCourierDeliveriesQuery{
		courierID: courierID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// CourierID returns the identifier of the courier whose deliveries are listed.
func (q GetCourierDeliveriesQuery) CourierID() kernel.UUID {
	return q.courierID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCourierDeliveriesQueryIsNotConstructed if validation fails.
func (q GetCourierDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierDeliveriesQueryIsNotConstructed)
}

// CourierDeliveryRow is one delivery in the courier read model.
// Status is the displayed status, which may differ from the stored one for
// deliveries stuck in collected status past the transit grace period.
type CourierDeliveryRow struct {
	ID               string
	Status           string
	CommerceName     string
	Address          string
	Description      string
	MotoboyEarning   float64
	CreatedAt        time.Time
	CollectedAt      *time.Time
	EstimatedArrival string
	CompletedAt      *time.Time
}

// GetCourierDeliveriesQueryResponse aggregates a courier's workload and
// earnings. TodayEarnings counts deliveries completed since local midnight.
type GetCourierDeliveriesQueryResponse struct {
	Active         []CourierDeliveryRow
	Completed      []CourierDeliveryRow
	TotalCompleted int
	TotalEarnings  float64
	TodayEarnings  float64
}
