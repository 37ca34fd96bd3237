package entities

// GeoPoint is a coordinate pair in decimal degrees.
type GeoPoint struct {
	Lat float64
	Lng float64
}
