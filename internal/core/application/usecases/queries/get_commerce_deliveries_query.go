package queries

import (
	"errors"
	"time"

	"deliveryconnect/internal/core/domain/model/kernel"
	"deliveryconnect/internal/pkg/errs"
	"deliveryconnect/internal/pkg/guard"
)

var ErrGetCommerceDeliveriesQueryIsNotConstructed = errors.New(
	"GetCommerceDeliveriesQuery must be created via NewGetCommerceDeliveriesQuery constructor",
)

// GetCommerceDeliveriesQuery retrieves every delivery created by a commerce,
// newest first. Backs the commerce dashboard.
type GetCommerceDeliveriesQuery struct {
	commerceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCommerceDeliveriesQuery creates a query for a commerce's deliveries.
func NewGetCommerceDeliveriesQuery(commerceID kernel.UUID) (GetCommerceDeliveriesQuery, error) {
	if err := commerceID.Validate(); err != nil {
		return GetCommerceDeliveriesQuery{}, errs.NewValueIsRequiredErrorWithCause("commerceID", err)
	}

	return GetCommerceDeliveriesQuery{
		commerceID: commerceID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// CommerceID returns the identifier of the commerce whose deliveries are listed.
func (q GetCommerceDeliveriesQuery) CommerceID() kernel.UUID {
	return q.commerceID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCommerceDeliveriesQueryIsNotConstructed if validation fails.
func (q GetCommerceDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCommerceDeliveriesQueryIsNotConstructed)
}

// GetCommerceDeliveriesQueryResponse is one delivery row in the commerce read
// model. Courier fields are empty until a courier collects the delivery.
type GetCommerceDeliveriesQueryResponse struct {
	ID               string
	Status           string
	CommerceName     string
	Address          string
	Description      string
	Value            float64
	MotoboyEarning   float64
	CreatedAt        time.Time
	MotoboyName      string
	MotoboyPhone     string
	CollectedAt      *time.Time
	EstimatedArrival string
	CompletedAt      *time.Time
}
