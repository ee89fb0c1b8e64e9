package utils

// ValidLatitude reports whether lat is inside [-90, 90]. Only the
// geocoding lookup endpoints bound coordinates; stored records are not
// range-checked.
func ValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// ValidLongitude reports whether lng is inside [-180, 180].
func ValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}
