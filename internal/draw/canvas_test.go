package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasScaling(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.SetFloat(50, 50)
	assert.True(t, c.Pixel(5, 5))
	assert.Equal(t, 10, c.TerminalWidth())
	assert.Equal(t, 5, c.TerminalHeight())

	col, row := c.LogicalToTerminal(50, 50)
	assert.Equal(t, 6, col)
	assert.Equal(t, 3, row)
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.DrawLine(Point{X: 0, Y: 0}, Point{X: 9, Y: 0})
	for x := range 10 {
		assert.True(t, c.Pixel(x, 0), "x=%d", x)
	}
	assert.False(t, c.Pixel(0, 1))
}

func TestCanvasFilledPolygon(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.DrawPolygon([]Point{{X: 1, Y: 1}, {X: 8, Y: 1}, {X: 8, Y: 8}, {X: 1, Y: 8}}, true)
	assert.True(t, c.Pixel(4, 4))
	assert.False(t, c.Pixel(9, 9))

	c.Clear()
	c.DrawPolygon([]Point{{X: 1, Y: 1}, {X: 8, Y: 1}, {X: 8, Y: 8}, {X: 1, Y: 8}}, false)
	assert.False(t, c.Pixel(4, 4))
	assert.True(t, c.Pixel(1, 4))
}

func TestCanvasDrawCircle(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	c.DrawCircle(10, 10, 5, true)
	assert.True(t, c.Pixel(10, 10))
	assert.True(t, c.Pixel(15, 10))
	assert.False(t, c.Pixel(17, 10))

	c.Clear()
	c.DrawCircle(3, 3, 0.2, false)
	assert.True(t, c.Pixel(3, 3), "tiny circles become a dot")
}

func TestCanvasRenderHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(3, 1, 3, 2)
	c.SetFloat(0, 0)
	c.SetFloat(1, 1)
	c.SetFloat(2, 0)
	c.SetFloat(2, 1)

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	assert.Equal(t, "\033[1;1H▀▄█", buf.String())
}

func TestCanvasRenderOnlyChanges(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	assert.Equal(t, "\033[1;1H    \033[2;1H    ", buf.String(), "first frame paints every cell")

	buf.Reset()
	require.NoError(t, c.Render(&buf))
	assert.Empty(t, buf.String(), "unchanged frame writes nothing")

	c.SetFloat(2, 2)
	buf.Reset()
	require.NoError(t, c.Render(&buf))
	assert.Equal(t, "\033[2;3H▀", buf.String())

	c.Clear()
	buf.Reset()
	require.NoError(t, c.Render(&buf))
	assert.Equal(t, "\033[2;3H ", buf.String(), "cleared cells are erased")

	c.ForceRedraw()
	buf.Reset()
	require.NoError(t, c.Render(&buf))
	assert.Equal(t, 2, strings.Count(buf.String(), "\033["))
}

func TestCanvasRenderOffset(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	c.SetOffset(3, 4)
	c.SetFloat(0, 0)
	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "\033[5;4H▀"))
}

func TestCanvasRenderBorder(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	c.SetOffset(1, 1)
	var buf bytes.Buffer
	require.NoError(t, c.RenderBorder(&buf))
	out := buf.String()
	assert.Contains(t, out, "┌──┐")
	assert.Contains(t, out, "└──┘")
	assert.Equal(t, 2, strings.Count(out, "│"))
}

func TestCanvasResizeForcesRedraw(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))

	c.Resize(3, 1)
	buf.Reset()
	require.NoError(t, c.Render(&buf))
	assert.Equal(t, "\033[1;1H   ", buf.String())
}

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name               string
		termW, termH, resv int
		want               Viewport
	}{
		{"width bound", 80, 60, 1, Viewport{Width: 80, Height: 30, OffsetCol: 0, OffsetRow: 15}},
		{"height bound", 200, 31, 1, Viewport{Width: 80, Height: 30, OffsetCol: 60, OffsetRow: 1}},
		{"short terminal", 80, 21, 1, Viewport{Width: 53, Height: 20, OffsetCol: 13, OffsetRow: 1}},
		{"capped", 500, 200, 1, Viewport{Width: 80, Height: 30, OffsetCol: 210, OffsetRow: 85}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitViewport(tt.termW, tt.termH, tt.resv, 80, 30, 640, 480)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFitViewportTiny(t *testing.T) {
	v := FitViewport(0, 0, 1, 80, 30, 640, 480)
	assert.GreaterOrEqual(t, v.Width, 1)
	assert.GreaterOrEqual(t, v.Height, 1)
}
