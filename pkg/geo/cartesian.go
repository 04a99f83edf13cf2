package geo

// Cartesian is a point in earth-centered 3D space, in meters.
type Cartesian struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}
