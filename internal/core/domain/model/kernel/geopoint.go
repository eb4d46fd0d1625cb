package kernel

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"catertrack/internal/pkg/errs"
	"catertrack/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in decimal degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in decimal degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in decimal degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in decimal degrees.
	LongitudeMax = 180.0
)

// Service-area bounding box used when generating route waypoints for orders in
// transit. Roughly covers the metropolitan delivery zone.
const (
	serviceAreaLatitudeMin  = 40.55
	serviceAreaLatitudeMax  = 40.92
	serviceAreaLongitudeMin = -74.10
	serviceAreaLongitudeMax = -73.70
)

// ErrGeoPointIsNotConstructed indicates that a GeoPoint was not created through
// one of the constructor functions. The zero value is invalid.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or NewRandomWaypoint constructors")

// GeoPoint represents a geographic position with a human-readable address label.
// It is an immutable value object with validated coordinates. Orders carry a
// GeoPoint only while they are in transit.
//
// The zero value of GeoPoint is invalid and must be constructed using NewGeoPoint
// or NewRandomWaypoint.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(40.7128, -74.0060, "Distribution hub, Lower Manhattan")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(point) // Output: GeoPoint(40.712800,-74.006000)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	address   string
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the specified coordinates and address label.
// Latitude must be within [LatitudeMin, LatitudeMax] and longitude within
// [LongitudeMin, LongitudeMax]. The address is free text and must be non-empty.
func NewGeoPoint(latitude float64, longitude float64, address string) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		point.setLatitude(latitude),
		point.setLongitude(longitude),
		point.setAddress(address),
	); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// NewRandomWaypoint creates a GeoPoint with random coordinates inside the service
// area. Used by the progression job to attach a transit position to orders that
// have left the kitchen.
func NewRandomWaypoint() (GeoPoint, error) {
	latitude := serviceAreaLatitudeMin +
		rand.Float64()*(serviceAreaLatitudeMax-serviceAreaLatitudeMin) //nolint:gosec // simulation only
	longitude := serviceAreaLongitudeMin +
		rand.Float64()*(serviceAreaLongitudeMax-serviceAreaLongitudeMin) //nolint:gosec // simulation only
	return NewGeoPoint(latitude, longitude, "En route")
}

// Validate checks if the GeoPoint was properly constructed using a constructor.
// The zero value is invalid and will fail this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// Address returns the free-text address label for the position.
func (p GeoPoint) Address() string {
	return p.address
}

// String returns a human-readable representation of the point.
// This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.latitude, p.longitude)
}

// IsEqual compares two geo points for equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p == other, nil
}

func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	p.longitude = longitude
	return nil
}

func (p *GeoPoint) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	p.address = address
	return nil
}
