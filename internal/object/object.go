package object

import (
	"github.com/tomz197/powerroids/internal/physics"
)

// Field is the playable area. Entities live in logical units; frontends scale to their surface.
type Field struct {
	Width  float64
	Height float64
}

// NewField creates a field with the given bounds.
func NewField(width, height float64) Field {
	return Field{Width: width, Height: height}
}

// Center returns the middle of the field.
func (f Field) Center() (float64, float64) {
	return f.Width / 2, f.Height / 2
}

// WrapPosition wraps x and y around the field (Asteroids-style). An object with
// the given margin (its radius) stays within [-margin, bound+margin) on each axis.
func (f Field) WrapPosition(x, y *float64, margin float64) {
	*x = physics.Wrap(*x, margin, f.Width)
	*y = physics.Wrap(*y, margin, f.Height)
}

// Outside reports whether a point lies strictly outside [0, bound] on either axis.
func (f Field) Outside(x, y float64) bool {
	return physics.Outside(x, f.Width) || physics.Outside(y, f.Height)
}

// UpdateContext provides the information an entity needs during its per-tick update.
type UpdateContext struct {
	Field Field
	Tick  uint64
}

// Object is an entity advanced once per simulation tick.
type Object interface {
	// Update advances the entity by one tick. Returns true if the entity expired
	// and should be removed from its collection.
	Update(ctx UpdateContext) (remove bool)
}

// Destructible is implemented by entities that can be marked for removal during
// a collision pass and compacted afterwards.
type Destructible interface {
	// MarkDestroyed marks the entity for removal.
	MarkDestroyed()
	// IsDestroyed returns true if the entity is marked for removal.
	IsDestroyed() bool
}

// UpdateAll advances every item and compacts expired ones out of the slice,
// preserving insertion order. The backing array is reused.
func UpdateAll[T Object](items []T, ctx UpdateContext) []T {
	kept := items[:0]
	for _, item := range items {
		if !item.Update(ctx) {
			kept = append(kept, item)
		}
	}
	clear(items[len(kept):])
	return kept
}

// Compact removes destroyed items from the slice, preserving insertion order.
func Compact[T Destructible](items []T) []T {
	kept := items[:0]
	for _, item := range items {
		if !item.IsDestroyed() {
			kept = append(kept, item)
		}
	}
	clear(items[len(kept):])
	return kept
}

// ShouldRenderBlink returns true if an object with remaining protection ticks
// should be drawn this frame. Returns true always if remainingTicks <= 0.
func ShouldRenderBlink(remainingTicks, period int) bool {
	if remainingTicks <= 0 || period <= 0 {
		return true
	}
	return (remainingTicks/period)%2 != 0
}
