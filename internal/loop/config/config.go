// Package config centralizes all tunable game parameters.
// Distances are in logical field units, durations in simulation ticks unless noted.
package config

import "time"

// Default field size for frontends with a fixed logical resolution (terminal, SSH).
// Desktop windows report their own bounds.
const (
	FieldWidth  = 640
	FieldHeight = 480
)

// Simulation cadence
const (
	TickRate     = 45
	TickInterval = time.Second / TickRate
)

// Craft
const (
	CraftSize          = 20.0
	CraftRadius        = CraftSize / 2
	CraftTurnSpeed     = 0.1  // Radians per tick
	BaseCraftThrust    = 0.1  // Acceleration per tick at multiplier 1.0
	Friction           = 0.99 // Velocity factor applied every tick
	CraftHitFactor     = 0.8  // Fraction of the craft radius used against asteroids
	InvincibilityTicks = 180
	FlameGrowth        = 2.0
	FlameDecay         = 1.0
	MaxFlameLength     = CraftSize
	BlinkPeriodTicks   = 4
)

// Thrust multiplier
const (
	MinThrustMultiplier     = 0.5
	MaxThrustMultiplier     = 2.0
	ThrustAdjustStep        = 0.1
	DefaultThrustMultiplier = 1.0
)

// Weapons
const (
	ProjectileSpeed    = 5.0
	ProjectileLifetime = 60
	ProjectileRadius   = 3.0
	BaseFireDelay      = 15
	RapidFireDelay     = 5
	SpreadAngle        = 0.25 // Radians between the center and side shots
)

// Asteroids
const (
	AsteroidSpeed        = 0.7
	AsteroidLargeSize    = 40.0
	AsteroidMediumSize   = 20.0
	AsteroidSmallSize    = 10.0
	AsteroidMinVertices  = 7
	AsteroidMaxVertices  = 12
	AsteroidMinJitter    = 0.7
	AsteroidMaxJitter    = 1.3
	AsteroidMaxSpin      = 0.01 // Radians per tick, either direction
	FragmentMinSpeed     = 0.5  // Multiples of AsteroidSpeed
	FragmentMaxSpeed     = 2.0
	MaxSpawnAttempts     = 1000
	SpawnSafetyRadiusMul = 3.0 // Multiples of the large asteroid radius
)

// Scoring
const (
	ScoreLargeAsteroid  = 20
	ScoreMediumAsteroid = 50
	ScoreSmallAsteroid  = 100
)

// Power-ups
const (
	PowerUpChance         = 0.15
	PowerUpLifetime       = 480
	PowerUpEffectDuration = 600
	PowerUpRadius         = 8.0
	PowerUpPulseStep      = 0.1
)

// Game flow
const (
	InitialLives         = 5
	InitialWaveSize      = 4
	LevelTransitionDelay = 2 * time.Second
)

// Background
const (
	NumStars      = 170
	StarMinRadius = 0.3
	StarMaxRadius = 1.5
	StarMinAlpha  = 0.3
	StarMaxAlpha  = 0.8
)

// Collision grid cell size. Must be >= the largest interaction distance
// (large asteroid radius + craft radius).
const CollisionCellSize = 32.0

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
	MaxTermWidth          = 200
	MaxTermHeight         = 60
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)
