package validators

// Coordinate bounds in signed decimal degrees.

func IsValidLatitude(v float64) bool {
	return v >= -90 && v <= 90
}

func IsValidLongitude(v float64) bool {
	return v >= -180 && v <= 180
}
