package geo

import (
	"errors"
	"math"

	"pako/internal/entities"
)

var ErrInvalidCoordinate = errors.New("invalid coordinate")

const earthRadiusKm = 6371.0

// Calculator computes great-circle distances. Stateless; exists as a struct so
// services can depend on it through an interface.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// DistanceKm returns the Haversine distance between two points in kilometres,
// rounded to 2 decimal places. NaN, Inf or out-of-range coordinates fail fast
// instead of propagating NaN into prices.
func (c *Calculator) DistanceKm(a, b entities.GeoPoint) (float64, error) {
	if err := validatePoint(a); err != nil {
		return 0, err
	}
	if err := validatePoint(b); err != nil {
		return 0, err
	}

	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	rLatA := degreesToRadians(a.Lat)
	rLatB := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLatA)*math.Cos(rLatB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	arc := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	km := earthRadiusKm * arc
	return math.Round(km*100) / 100, nil
}

func validatePoint(p entities.GeoPoint) error {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) ||
		math.IsNaN(p.Lng) || math.IsInf(p.Lng, 0) {
		return ErrInvalidCoordinate
	}
	if p.Lat < -90 || p.Lat > 90 {
		return ErrInvalidCoordinate
	}
	if p.Lng < -180 || p.Lng > 180 {
		return ErrInvalidCoordinate
	}
	return nil
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
