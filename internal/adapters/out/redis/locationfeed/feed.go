// Package locationfeed implements the live-location channel on Redis.
// Positions are ephemeral by design: every entry carries a TTL a few refresh
// cycles long, so a courier whose refreshes stop disappears from tracking
// views without any cleanup job.
package locationfeed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"deliveryconnect/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const (
	locationKeyPrefix = "courier:location:"

	// locationTTL is three refresh cycles; an entry survives a couple of
	// missed refreshes but not a dead courier process.
	locationTTL = 15 * time.Second
)

// positionPayload is the stored JSON shape of one live position.
type positionPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Feed implements ports.LocationFeed backed by a Redis client.
type Feed struct {
	client *redis.Client
}

// NewFeed creates a Redis-backed location feed.
func NewFeed(client *redis.Client) *Feed {
	return &Feed{client: client}
}

// Publish overwrites the courier's live position. Last write wins.
func (f *Feed) Publish(ctx context.Context, courierID kernel.UUID, position kernel.GeoPoint) error {
	if err := position.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(positionPayload{
		Lat: position.Lat(),
		Lng: position.Lng(),
	})
	if err != nil {
		return err
	}

	return f.client.Set(ctx, locationKeyPrefix+courierID.String(), raw, locationTTL).Err()
}

// Get returns the courier's live position, or found=false when no unexpired
// entry exists.
func (f *Feed) Get(ctx context.Context, courierID kernel.UUID) (kernel.GeoPoint, bool, error) {
	raw, err := f.client.Get(ctx, locationKeyPrefix+courierID.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return kernel.GeoPoint{}, false, nil
	}
	if err != nil {
		return kernel.GeoPoint{}, false, err
	}

	var payload positionPayload
	if err = json.Unmarshal(raw, &payload); err != nil {
		return kernel.GeoPoint{}, false, err
	}

	position, err := kernel.NewGeoPoint(payload.Lat, payload.Lng)
	if err != nil {
		return kernel.GeoPoint{}, false, err
	}

	return position, true, nil
}

// Drop removes the courier's entry, used when the courier goes offline.
func (f *Feed) Drop(ctx context.Context, courierID kernel.UUID) error {
	return f.client.Del(ctx, locationKeyPrefix+courierID.String()).Err()
}
