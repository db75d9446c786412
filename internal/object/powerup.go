package object

import (
	"github.com/tomz197/powerroids/internal/loop/config"
)

// PowerUpKind identifies a power-up. The zero value means no power-up.
type PowerUpKind int

const (
	PowerUpNone PowerUpKind = iota
	PowerUpShield
	PowerUpRapidFire
	PowerUpSpreadShot
)

// PowerUpKinds lists every collectible kind, in spawn-table order.
var PowerUpKinds = []PowerUpKind{PowerUpShield, PowerUpRapidFire, PowerUpSpreadShot}

// Effect is the data a power-up kind applies to the craft while active.
type Effect struct {
	Shield    bool   // One-hit collision immunity
	FireDelay int    // Ticks required between shots
	Spread    bool   // Fire three projectiles per shot
	Label     string // HUD text
	Symbol    rune   // Glyph drawn on the pickup
}

var effects = map[PowerUpKind]Effect{
	PowerUpNone:       {FireDelay: config.BaseFireDelay, Label: "None", Symbol: '?'},
	PowerUpShield:     {Shield: true, FireDelay: config.BaseFireDelay, Label: "Shield Active!", Symbol: 'S'},
	PowerUpRapidFire:  {FireDelay: config.RapidFireDelay, Label: "Rapid Fire!", Symbol: 'R'},
	PowerUpSpreadShot: {FireDelay: config.BaseFireDelay, Spread: true, Label: "Spread Shot!", Symbol: 'W'},
}

// Effect returns the effect data for the kind. Unknown kinds behave like PowerUpNone.
func (k PowerUpKind) Effect() Effect {
	if e, ok := effects[k]; ok {
		return e
	}
	return effects[PowerUpNone]
}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	case PowerUpRapidFire:
		return "rapid_fire"
	case PowerUpSpreadShot:
		return "spread_shot"
	default:
		return "none"
	}
}

// PowerUp is a collectible dropped by destroyed asteroids.
type PowerUp struct {
	X, Y       float64
	Kind       PowerUpKind
	Radius     float64
	Lifetime   int     // Ticks remaining before it disappears
	PulsePhase float64 // Presentation only
}

// NewPowerUp creates a power-up of the given kind at (x, y).
func NewPowerUp(x, y float64, kind PowerUpKind) *PowerUp {
	return &PowerUp{
		X:        x,
		Y:        y,
		Kind:     kind,
		Radius:   config.PowerUpRadius,
		Lifetime: config.PowerUpLifetime,
	}
}

// Update counts down the lifetime. Returns true once the power-up expired.
func (p *PowerUp) Update(_ UpdateContext) bool {
	p.Lifetime--
	p.PulsePhase += config.PowerUpPulseStep
	return p.Expired()
}

// Expired reports whether the lifetime ran out.
func (p *PowerUp) Expired() bool {
	return p.Lifetime <= 0
}
