package ports

import (
	"context"

	"deliveryconnect/internal/core/domain/model/kernel"
)

// LocationFeed is the ephemeral live-location channel consumed by tracking
// views. Entries are overwritten on every refresh and expire on their own;
// the system of record keeps only the last known position for ranking.
type LocationFeed interface {
	// Publish overwrites the courier's live position. Last write wins.
	Publish(ctx context.Context, courierID kernel.UUID, position kernel.GeoPoint) error

	// Get returns the courier's live position, or found=false when the
	// courier has no unexpired entry.
	Get(ctx context.Context, courierID kernel.UUID) (position kernel.GeoPoint, found bool, err error)

	// Drop removes the courier's entry, used when the courier goes offline.
	Drop(ctx context.Context, courierID kernel.UUID) error
}
