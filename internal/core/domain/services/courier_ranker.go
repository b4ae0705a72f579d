package services

import (
	"sort"

	"deliveryconnect/internal/core/domain/model/courier"
	"deliveryconnect/internal/core/domain/model/kernel"
)

// RankedCourier pairs a courier with its distance from the reference point.
// HasDistance is false when the courier has not reported a position yet;
// DistanceKm is meaningless in that case.
type RankedCourier struct {
	Courier     *courier.Courier
	DistanceKm  float64
	HasDistance bool
}

// CourierRanker is a domain service producing the "available couriers"
// listing a commerce sees when choosing who to hand a package to.
//
// Ordering contract:
//   - offline couriers are excluded entirely, whatever their distance
//   - online couriers with a known position sort ascending by distance
//   - online couriers without a position come after all located ones;
//     their relative order is unspecified
type CourierRanker struct{}

// NewCourierRanker creates a new CourierRanker instance.
func NewCourierRanker() CourierRanker {
	return CourierRanker{}
}

// Rank filters and orders couriers relative to the commerce location.
//
// Returns a validation error if the commerce location or any courier is
// improperly constructed; distance computation itself is total for valid
// points.
func (r CourierRanker) Rank(
	commerceLocation kernel.GeoPoint,
	couriers []*courier.Courier,
) ([]RankedCourier, error) {
	if err := commerceLocation.Validate(); err != nil {
		return nil, err
	}

	ranked := make([]RankedCourier, 0, len(couriers))
	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !c.IsOnline() {
			continue
		}

		entry := RankedCourier{Courier: c}
		if pos := c.Position(); pos != nil {
			km, err := commerceLocation.Distance(*pos)
			if err != nil {
				return nil, err
			}
			entry.DistanceKm = km
			entry.HasDistance = true
		}

		ranked = append(ranked, entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.HasDistance != b.HasDistance {
			return a.HasDistance
		}
		if !a.HasDistance {
			return false
		}
		return a.DistanceKm < b.DistanceKm
	})

	return ranked, nil
}
