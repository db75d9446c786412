package object

import (
	"github.com/tomz197/powerroids/internal/loop/config"
	"github.com/tomz197/powerroids/internal/physics"
)

// Projectile is a shot fired by the craft. Projectiles do not wrap.
type Projectile struct {
	X, Y      float64 // Position
	VX, VY    float64 // Velocity per tick
	Radius    float64
	Lifetime  int  // Ticks remaining before removal
	destroyed bool // Marked for destruction during a collision pass
}

// NewProjectile creates a projectile at (x, y) traveling along angle at ProjectileSpeed.
func NewProjectile(x, y, angle float64) *Projectile {
	vx, vy := physics.Polar(angle, config.ProjectileSpeed)
	return &Projectile{
		X:        x,
		Y:        y,
		VX:       vx,
		VY:       vy,
		Radius:   config.ProjectileRadius,
		Lifetime: config.ProjectileLifetime,
	}
}

// Update moves the projectile and counts down its lifetime.
// Returns true when it has expired or left the field.
func (p *Projectile) Update(ctx UpdateContext) bool {
	p.X += p.VX
	p.Y += p.VY
	p.Lifetime--
	return p.Expired(ctx.Field)
}

// Expired reports whether the projectile ran out of lifetime or is outside the field.
func (p *Projectile) Expired(field Field) bool {
	return p.Lifetime <= 0 || field.Outside(p.X, p.Y)
}

// MarkDestroyed marks the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the projectile is marked for destruction.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed
}
