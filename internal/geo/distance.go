package geo

import "math"

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371

// Distance returns the great-circle distance in kilometers between two
// points given in signed decimal degrees, using the haversine formula.
// Callers validate coordinate ranges; this is a pure computation.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Pow(math.Sin(dLon/2), 2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
