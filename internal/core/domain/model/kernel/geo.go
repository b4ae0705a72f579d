package kernel

import (
	"errors"
	"fmt"
	"math"

	"deliveryconnect/internal/pkg/errs"
	"deliveryconnect/internal/pkg/guard"
)

const (
	// MinLatitude and MaxLatitude bound valid WGS-84 latitudes in degrees.
	MinLatitude float64 = -90
	MaxLatitude float64 = 90
	// MinLongitude and MaxLongitude bound valid WGS-84 longitudes in degrees.
	MinLongitude float64 = -180
	MaxLongitude float64 = 180

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic position with validated coordinates.
// It is an immutable value object; the zero value is invalid and fails
// validation.
//
// Example:
//
//	p, err := kernel.NewGeoPoint(-23.5505, -46.6333)
//	if err != nil {
//	    // Handle validation error
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in degrees.
// Returns a validation error if either coordinate is outside its valid range
// or is not a finite number.
func NewGeoPoint(lat float64, lng float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLat(lat), p.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks that the GeoPoint was created through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.lat, p.lng)
}

// IsEqual compares two points for coordinate equality.
// Both points must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lng == other.lng, nil
}

// Distance calculates the great-circle distance to another point in
// kilometers using the haversine formula. The result is non-negative and
// total for any pair of valid points; Distance(a,b) == Distance(b,a).
func (p GeoPoint) Distance(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := toRadians(other.lat - p.lat)
	dLng := toRadians(other.lng - p.lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(p.lat))*math.Cos(toRadians(other.lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// FormatDistance renders a distance in kilometers for display.
// Distances under one kilometer are shown in whole meters, everything else
// in kilometers with one decimal place.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1fkm", km)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// setLat sets the latitude with validation.
// Pointer receiver is used for the private setters to enable self-encapsulated
// validation during construction.
func (p *GeoPoint) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("lat", lat, MinLatitude, MaxLatitude)
	}

	p.lat = lat
	return nil
}

// setLng sets the longitude with validation.
func (p *GeoPoint) setLng(lng float64) error {
	if math.IsNaN(lng) || lng < MinLongitude || lng > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("lng", lng, MinLongitude, MaxLongitude)
	}

	p.lng = lng
	return nil
}
