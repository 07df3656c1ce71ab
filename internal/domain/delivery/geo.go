// internal/domain/delivery/geo.go
package delivery

import "math"

// earthRadiusKM is the mean Earth radius used by the haversine formula
const earthRadiusKM = 6371.0

// Coordinate is a latitude/longitude pair in degrees
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Distance returns the great-circle distance between two coordinates in
// kilometers, via the haversine formula. Symmetric; zero for identical
// points.
func Distance(from, to Coordinate) float64 {
	dLat := radians(to.Lat - from.Lat)
	dLng := radians(to.Lng - from.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(from.Lat))*math.Cos(radians(to.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
