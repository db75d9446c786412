package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/powerroids/internal/loop/config"
)

// AsteroidSize represents the size category of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

var asteroidRadii = map[AsteroidSize]float64{
	AsteroidSmall:  config.AsteroidSmallSize / 2,
	AsteroidMedium: config.AsteroidMediumSize / 2,
	AsteroidLarge:  config.AsteroidLargeSize / 2,
}

var asteroidPoints = map[AsteroidSize]int{
	AsteroidSmall:  config.ScoreSmallAsteroid,
	AsteroidMedium: config.ScoreMediumAsteroid,
	AsteroidLarge:  config.ScoreLargeAsteroid,
}

// Radius returns the collision radius for the size class.
func (s AsteroidSize) Radius() float64 {
	return asteroidRadii[s]
}

// Points returns the score awarded for destroying an asteroid of this size.
func (s AsteroidSize) Points() int {
	return asteroidPoints[s]
}

// Smaller returns the size of the fragments this size splits into.
// ok is false for small asteroids, which leave nothing behind.
func (s AsteroidSize) Smaller() (AsteroidSize, bool) {
	if s <= AsteroidSmall {
		return 0, false
	}
	return s - 1, true
}

func (s AsteroidSize) String() string {
	switch s {
	case AsteroidSmall:
		return "small"
	case AsteroidMedium:
		return "medium"
	case AsteroidLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Vertex is a silhouette point relative to the asteroid center, before rotation.
type Vertex struct {
	X, Y float64
}

// Asteroid is a destructible space rock.
type Asteroid struct {
	X, Y          float64      // Position (center)
	VX, VY        float64      // Velocity per tick
	Angle         float64      // Current rotation angle
	RotationSpeed float64      // Radians per tick
	Size          AsteroidSize // Size category
	Radius        float64      // Collision radius
	Vertices      []Vertex     // Irregular outline, fixed at creation
	Destroyed     bool         // Marked for removal during a collision pass
}

// NewAsteroid creates an asteroid at (x, y) with velocity (vx, vy).
// The silhouette, initial angle and spin are drawn from rng.
func NewAsteroid(rng *rand.Rand, x, y, vx, vy float64, size AsteroidSize) *Asteroid {
	radius := size.Radius()

	numVerts := config.AsteroidMinVertices + rng.Intn(config.AsteroidMaxVertices-config.AsteroidMinVertices+1)
	vertices := make([]Vertex, numVerts)
	for i := range vertices {
		angle := float64(i) / float64(numVerts) * 2 * math.Pi
		dist := radius * (config.AsteroidMinJitter + rng.Float64()*(config.AsteroidMaxJitter-config.AsteroidMinJitter))
		vertices[i] = Vertex{X: math.Cos(angle) * dist, Y: math.Sin(angle) * dist}
	}

	return &Asteroid{
		X:             x,
		Y:             y,
		VX:            vx,
		VY:            vy,
		Angle:         rng.Float64() * 2 * math.Pi,
		RotationSpeed: (rng.Float64()*2 - 1) * config.AsteroidMaxSpin,
		Size:          size,
		Radius:        radius,
		Vertices:      vertices,
	}
}

// Update moves the asteroid, advances its rotation and wraps it around the field.
// Asteroids never expire on their own.
func (a *Asteroid) Update(ctx UpdateContext) bool {
	a.X += a.VX
	a.Y += a.VY
	a.Angle += a.RotationSpeed
	ctx.Field.WrapPosition(&a.X, &a.Y, a.Radius)
	return false
}

// Outline returns the silhouette in field coordinates for the current rotation.
func (a *Asteroid) Outline() []Vertex {
	sin, cos := math.Sincos(a.Angle)
	points := make([]Vertex, len(a.Vertices))
	for i, v := range a.Vertices {
		points[i] = Vertex{
			X: a.X + v.X*cos - v.Y*sin,
			Y: a.Y + v.X*sin + v.Y*cos,
		}
	}
	return points
}

// MarkDestroyed marks the asteroid for removal (implements Destructible).
func (a *Asteroid) MarkDestroyed() {
	a.Destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for destruction (implements Destructible).
func (a *Asteroid) IsDestroyed() bool {
	return a.Destroyed
}
