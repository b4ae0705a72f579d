package queries

import (
	"errors"

	"deliveryconnect/internal/core/domain/model/delivery"
	"deliveryconnect/internal/pkg/errs"
	"deliveryconnect/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery retrieves a single delivery by its identifier. Used by the
// handoff endpoint to re-encode the scannable payload for display.
type GetDeliveryQuery struct {
	deliveryID delivery.ID

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a query for one delivery.
func NewGetDeliveryQuery(deliveryID delivery.ID) (GetDeliveryQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryQuery{}, errs.NewValueIsRequiredErrorWithCause("deliveryID", err)
	}

	return GetDeliveryQuery{
		deliveryID: deliveryID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// DeliveryID returns the identifier of the requested delivery.
func (q GetDeliveryQuery) DeliveryID() delivery.ID {
	return q.deliveryID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryQueryIsNotConstructed if validation fails.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}
