package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(0, 0, 3, 4), 1e-9)
	assert.InDelta(t, 25.0, DistanceSquared(0, 0, 3, 4), 1e-9)
	assert.InDelta(t, 0.0, Distance(7, -2, 7, -2), 1e-9)
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		x2, y2   float64
		expected bool
	}{
		{name: "touching", x2: 10, y2: 0, expected: false},
		{name: "overlapping", x2: 9.99, y2: 0, expected: true},
		{name: "apart", x2: 15, y2: 0, expected: false},
		{name: "same_center", x2: 0, y2: 0, expected: true},
		{name: "diagonal", x2: 3, y2: 4, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CirclesOverlap(0, 0, 5, tt.x2, tt.y2, 5))
		})
	}
}

func TestPointInCircle(t *testing.T) {
	assert.True(t, PointInCircle(3, 4, 0, 0, 5))
	assert.False(t, PointInCircle(3.1, 4, 0, 0, 5))
}

func TestPolar(t *testing.T) {
	x, y := Polar(math.Pi/2, 2)
	assert.InDelta(t, 0.0, x, 1e-9)
	assert.InDelta(t, 2.0, y, 1e-9)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		expected float64
	}{
		{name: "inside", v: 50, expected: 50},
		{name: "lower_margin_kept", v: -10, expected: -10},
		{name: "past_lower_margin", v: -12, expected: 108},
		{name: "upper_edge_is_exclusive", v: 110, expected: -10},
		{name: "past_upper_margin", v: 113, expected: -7},
		{name: "several_spans", v: 50 + 3*120, expected: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.v, 10, 100)
			assert.InDelta(t, tt.expected, got, 1e-9)
			assert.GreaterOrEqual(t, got, -10.0)
			assert.Less(t, got, 110.0)
		})
	}
}

func TestWrap_TinyNegativeStaysInRange(t *testing.T) {
	got := Wrap(-10-1e-17, 10, 100)
	assert.GreaterOrEqual(t, got, -10.0)
	assert.Less(t, got, 110.0)
}

func TestOutside(t *testing.T) {
	assert.False(t, Outside(0, 100))
	assert.False(t, Outside(100, 100))
	assert.True(t, Outside(-0.01, 100))
	assert.True(t, Outside(100.01, 100))
}
