package ports

import (
	"context"

	"deliveryconnect/internal/core/domain/model/kernel"
)

// PositionProvider supplies position samples for online couriers.
// Real devices report through their own channel; the shipped implementation
// is a demo-mode random walk around a fixed origin.
type PositionProvider interface {
	// CurrentPosition returns a fresh position sample for the courier.
	CurrentPosition(ctx context.Context, courierID kernel.UUID) (kernel.GeoPoint, error)
}
