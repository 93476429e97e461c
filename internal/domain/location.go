package domain

// Location is a WGS84 point in degrees.
type Location struct {
	Lat float64
	Lon float64
}
