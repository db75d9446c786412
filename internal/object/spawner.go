package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/powerroids/internal/loop/config"
	"github.com/tomz197/powerroids/internal/physics"
)

// Spawner creates asteroids, power-ups and stars. All randomness flows through
// its rng, so a fixed seed reproduces a game.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// NewSeededSpawner creates a spawner with its own source seeded with seed.
func NewSeededSpawner(seed int64) *Spawner {
	return NewSpawner(rand.New(rand.NewSource(seed)))
}

// SafeDistance is the minimum distance between a freshly spawned wave asteroid
// and the craft.
func SafeDistance(craft *Craft) float64 {
	r := config.CraftRadius
	if craft != nil {
		r = craft.Radius
	}
	return config.SpawnSafetyRadiusMul*AsteroidLarge.Radius() + r
}

// Wave creates count asteroids of the given size.
//
// Without a source, asteroids are scattered over the field away from the craft.
// With a source, they are fragments launched from the source's position.
func (s *Spawner) Wave(count int, source *Asteroid, size AsteroidSize, field Field, craft *Craft) []*Asteroid {
	if count <= 0 {
		return nil
	}
	asteroids := make([]*Asteroid, 0, count)
	for range count {
		var x, y, vx, vy float64
		if source != nil {
			x, y = source.X, source.Y
			speed := config.AsteroidSpeed * s.uniform(config.FragmentMinSpeed, config.FragmentMaxSpeed)
			vx, vy = physics.Polar(s.rng.Float64()*2*math.Pi, speed)
		} else {
			x, y = s.safePosition(field, craft)
			vx = s.uniform(-1, 1) * config.AsteroidSpeed
			vy = s.uniform(-1, 1) * config.AsteroidSpeed
		}
		asteroids = append(asteroids, NewAsteroid(s.rng, x, y, vx, vy, size))
	}
	return asteroids
}

// safePosition samples positions until one is far enough from the craft.
// The last sample is used if none qualifies within MaxSpawnAttempts.
func (s *Spawner) safePosition(field Field, craft *Craft) (float64, float64) {
	x := s.rng.Float64() * field.Width
	y := s.rng.Float64() * field.Height
	if craft == nil {
		return x, y
	}
	minDist := SafeDistance(craft)
	for attempt := 1; attempt < config.MaxSpawnAttempts; attempt++ {
		if physics.Distance(x, y, craft.X, craft.Y) > minDist {
			break
		}
		x = s.rng.Float64() * field.Width
		y = s.rng.Float64() * field.Height
	}
	return x, y
}

// TryPowerUp rolls PowerUpChance and, on success, returns a power-up of a
// random kind at (x, y). Returns nil otherwise.
func (s *Spawner) TryPowerUp(x, y float64) *PowerUp {
	if s.rng.Float64() >= config.PowerUpChance {
		return nil
	}
	kind := PowerUpKinds[s.rng.Intn(len(PowerUpKinds))]
	return NewPowerUp(x, y, kind)
}

// Stars scatters n background stars uniformly over the field.
func (s *Spawner) Stars(field Field, n int) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:      s.rng.Float64() * field.Width,
			Y:      s.rng.Float64() * field.Height,
			Radius: s.uniform(config.StarMinRadius, config.StarMaxRadius),
			Alpha:  s.uniform(config.StarMinAlpha, config.StarMaxAlpha),
		}
	}
	return stars
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
