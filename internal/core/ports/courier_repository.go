package ports

import (
	"context"

	"deliveryconnect/internal/core/domain/model/courier"
	"deliveryconnect/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetForUpdate retrieves a courier and locks its row for the duration of
	// the enclosing transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllOnline retrieves all couriers currently visible to commerces.
	// Used by the availability listing and by the periodic location refresh.
	GetAllOnline(ctx context.Context) ([]*courier.Courier, error)
}
