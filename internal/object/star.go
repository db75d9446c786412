package object

// Star is a static background point. Presentation only.
type Star struct {
	X, Y   float64
	Radius float64
	Alpha  float64
}
