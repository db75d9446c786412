package loop

import (
	"slices"

	"github.com/tomz197/powerroids/internal/loop/config"
	"github.com/tomz197/powerroids/internal/object"
	"github.com/tomz197/powerroids/internal/physics"
)

// checkCollisions runs one collision pass. Hits only mark entities; destroyed
// ones are compacted out at the end so indices stay stable during the pass.
// Among overlapping candidates the latest-inserted one wins.
func (l *Loop) checkCollisions() {
	s := l.state

	l.rebuildGrid()
	l.checkProjectileAsteroidCollisions()
	if !s.GameOver() && s.Craft.InvincibilityTicks == 0 {
		l.checkCraftAsteroidCollisions()
	}
	if !s.GameOver() {
		l.checkCraftPowerUpCollisions()
	}

	s.Projectiles = object.Compact(s.Projectiles)
	s.Asteroids = object.Compact(s.Asteroids)
}

// rebuildGrid indexes asteroids by their position in s.Asteroids.
func (l *Loop) rebuildGrid() {
	l.grid.Clear()
	for i, a := range l.state.Asteroids {
		l.grid.Insert(a.X, a.Y, i)
	}
}

// checkProjectileAsteroidCollisions walks projectiles newest first. Each one
// destroys at most one asteroid. Fragments join the grid immediately.
func (l *Loop) checkProjectileAsteroidCollisions() {
	s := l.state
	for i := len(s.Projectiles) - 1; i >= 0; i-- {
		p := s.Projectiles[i]
		if p.IsDestroyed() {
			continue
		}
		hit := l.grid.Latest(p.X, p.Y, func(j int) bool {
			a := s.Asteroids[j]
			return !a.IsDestroyed() && physics.CirclesOverlap(a.X, a.Y, a.Radius, p.X, p.Y, p.Radius)
		})
		if hit < 0 {
			continue
		}
		p.MarkDestroyed()
		l.splitAsteroid(hit)
	}
}

// checkCraftAsteroidCollisions handles the first asteroid touching the craft.
func (l *Loop) checkCraftAsteroidCollisions() {
	s := l.state
	c := s.Craft
	hit := l.grid.Latest(c.X, c.Y, func(j int) bool {
		a := s.Asteroids[j]
		return !a.IsDestroyed() && physics.WithinDistance(a.X, a.Y, c.X, c.Y, a.Radius+config.CraftHitFactor*c.Radius)
	})
	if hit < 0 {
		return
	}
	if c.Shield {
		l.splitAsteroid(hit)
		c.DeactivatePowerUp()
		return
	}
	l.loseLife()
}

// checkCraftPowerUpCollisions collects the newest power-up touching the craft.
func (l *Loop) checkCraftPowerUpCollisions() {
	s := l.state
	c := s.Craft
	for i := len(s.PowerUps) - 1; i >= 0; i-- {
		p := s.PowerUps[i]
		if !physics.CirclesOverlap(c.X, c.Y, c.Radius, p.X, p.Y, p.Radius) {
			continue
		}
		c.ActivatePowerUp(p.Kind)
		s.PowerUps = slices.Delete(s.PowerUps, i, i+1)
		l.metrics.PowerUpCollected(l.ctx, p.Kind.String())
		l.logger.Debug("power-up collected", "kind", p.Kind)
		return
	}
}

// splitAsteroid destroys the asteroid at index i, scores it, spawns its
// fragments and maybe a power-up, and levels up when the field is clear.
func (l *Loop) splitAsteroid(i int) {
	s := l.state
	a := s.Asteroids[i]
	a.MarkDestroyed()
	s.Score += a.Size.Points()
	l.metrics.AsteroidDestroyed(l.ctx, a.Size.String())

	if next, ok := a.Size.Smaller(); ok {
		for _, f := range l.spawner.Wave(2, a, next, s.Field, s.Craft) {
			s.Asteroids = append(s.Asteroids, f)
			l.grid.Insert(f.X, f.Y, len(s.Asteroids)-1)
		}
	}

	if p := l.spawner.TryPowerUp(a.X, a.Y); p != nil {
		s.PowerUps = append(s.PowerUps, p)
	}

	if s.LiveAsteroids() == 0 && !s.GameOver() {
		l.levelUp()
	}
}
