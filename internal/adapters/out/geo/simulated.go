// Package geo provides position provider implementations.
// The shipped provider is a demo-mode simulator; real courier devices would
// report through their own channel behind the same port.
package geo

import (
	"context"
	"math/rand/v2"
	"sync"

	"deliveryconnect/internal/core/domain/model/kernel"
)

// Default walk origin: central São Paulo.
const (
	originLat = -23.5505
	originLng = -46.6333

	// maxOffset bounds the walk to roughly a city-sized box around the
	// origin, about 5.5 km of latitude either way.
	maxOffset = 0.05

	// stepSize is one walk step in degrees, a few hundred meters.
	stepSize = 0.005
)

// SimulatedProvider produces a bounded random walk per courier around a
// fixed origin. Each courier keeps its own walk state, so consecutive
// samples for one courier stay near each other. Safe for concurrent use.
type SimulatedProvider struct {
	mu        sync.Mutex
	positions map[string]kernel.GeoPoint
}

// NewSimulatedProvider creates a demo-mode position provider.
func NewSimulatedProvider() *SimulatedProvider {
	return &SimulatedProvider{
		positions: make(map[string]kernel.GeoPoint),
	}
}

// CurrentPosition returns the courier's next walk position.
// A courier seen for the first time starts at a random point inside the
// walk box; subsequent samples move at most one step from the previous one.
func (p *SimulatedProvider) CurrentPosition(_ context.Context, courierID kernel.UUID) (kernel.GeoPoint, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := courierID.String()

	previous, seen := p.positions[key]
	if !seen {
		start, err := kernel.NewGeoPoint(
			originLat+randomOffset(maxOffset),
			originLng+randomOffset(maxOffset),
		)
		if err != nil {
			return kernel.GeoPoint{}, err
		}
		p.positions[key] = start
		return start, nil
	}

	next, err := kernel.NewGeoPoint(
		clamp(previous.Lat()+randomOffset(stepSize), originLat-maxOffset, originLat+maxOffset),
		clamp(previous.Lng()+randomOffset(stepSize), originLng-maxOffset, originLng+maxOffset),
	)
	if err != nil {
		return kernel.GeoPoint{}, err
	}

	p.positions[key] = next
	return next, nil
}

// randomOffset returns a uniform value in [-bound, bound].
func randomOffset(bound float64) float64 {
	return (rand.Float64()*2 - 1) * bound
}

func clamp(v float64, low float64, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
