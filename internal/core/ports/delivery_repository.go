// Package ports defines the contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"deliveryconnect/internal/core/domain/model/delivery"
	"deliveryconnect/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Deliveries are never deleted; completed records are retained for history
// and reporting.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate.
	// The delivery must be valid and not already exist.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its identifier.
	// Returns an object-not-found error when no record exists.
	Get(ctx context.Context, id delivery.ID) (*delivery.Delivery, error)

	// GetForUpdate retrieves a delivery and locks its row for the duration
	// of the enclosing transaction. Status transition commands use it so the
	// pending-status check cannot be bypassed by an interleaved writer.
	GetForUpdate(ctx context.Context, id delivery.ID) (*delivery.Delivery, error)

	// GetByCommerce retrieves all deliveries created by a commerce,
	// newest first.
	GetByCommerce(ctx context.Context, commerceID kernel.UUID) ([]*delivery.Delivery, error)

	// GetByCourier retrieves all deliveries assigned to a courier,
	// newest first.
	GetByCourier(ctx context.Context, courierID kernel.UUID) ([]*delivery.Delivery, error)
}
