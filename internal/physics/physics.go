// Package physics provides collision detection, distance and wrap utilities.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// CirclesOverlap reports whether two circles overlap, i.e. the distance between
// their centers is strictly less than the sum of their radii.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return WithinDistance(x1, y1, x2, y2, r1+r2)
}

// WithinDistance reports whether two points are strictly closer than d.
func WithinDistance(x1, y1, x2, y2, d float64) bool {
	return DistanceSquared(x1, y1, x2, y2) < d*d
}

// Polar returns the x and y components of a vector with the given heading and magnitude.
func Polar(angle, magnitude float64) (float64, float64) {
	return math.Cos(angle) * magnitude, math.Sin(angle) * magnitude
}

// Wrap folds v into the half-open range [-margin, bound+margin).
// An object leaving one edge reappears on the opposite edge with its overshoot kept.
func Wrap(v, margin, bound float64) float64 {
	span := bound + 2*margin
	if span <= 0 {
		return v
	}
	v = math.Mod(v+margin, span)
	if v < 0 {
		v += span
	}
	if v >= span {
		v = 0
	}
	return v - margin
}

// Outside reports whether v lies strictly outside [0, bound].
func Outside(v, bound float64) bool {
	return v < 0 || v > bound
}
