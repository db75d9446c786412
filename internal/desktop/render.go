package desktop

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/powerroids/internal/loop"
	"github.com/tomz197/powerroids/internal/object"
)

// Cell size of ebitenutil's debug font.
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

var (
	backgroundColor = color.RGBA{5, 5, 15, 255}
	lineColor       = color.RGBA{230, 230, 230, 255}
	flameColor      = color.RGBA{255, 160, 40, 255}
	shieldColor     = color.RGBA{90, 170, 255, 255}
	powerUpColors   = map[object.PowerUpKind]color.RGBA{
		object.PowerUpShield:     {90, 170, 255, 255},
		object.PowerUpRapidFire:  {255, 90, 90, 255},
		object.PowerUpSpreadShot: {120, 255, 120, 255},
	}
)

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if !g.started {
		drawCentered(screen, "POWERROIDS\n\nArrows/WASD to fly, SPACE to fire, -/= thrust power\nR to restart, ESC to quit\n\nPress SPACE to start")
		return
	}
	if !g.ready {
		return
	}

	s := &g.snapshot
	for _, star := range s.Stars {
		c := color.RGBA{255, 255, 255, uint8(star.Alpha * 255)}
		vector.DrawFilledCircle(screen, float32(star.X), float32(star.Y), float32(star.Radius), c, true)
	}

	for i := range s.Asteroids {
		strokePolygon(screen, s.Asteroids[i].Outline(), lineColor)
	}

	for _, p := range s.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), lineColor, true)
	}

	for _, p := range s.PowerUps {
		c := powerUpColors[p.Kind]
		r := p.Radius * (1 + 0.25*math.Sin(p.PulsePhase))
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(r), 2, c, true)
		ebitenutil.DebugPrintAt(screen, string(p.Kind.Effect().Symbol), int(p.X)-debugGlyphWidth/2, int(p.Y)-debugGlyphHeight/2)
	}

	if g.hud.Phase != loop.PhaseGameOver && s.Craft.Visible() {
		drawCraft(screen, &s.Craft)
	}

	ebitenutil.DebugPrint(screen, hudText(g.hud))
	if g.hud.Message != "" {
		drawCentered(screen, g.hud.Message)
	}
}

func drawCraft(screen *ebiten.Image, c *object.Craft) {
	size := c.Radius * 2
	at := func(angle, dist float64) (float32, float32) {
		return float32(c.X + math.Cos(angle)*dist), float32(c.Y + math.Sin(angle)*dist)
	}
	nx, ny := at(c.Angle, size)
	lx, ly := at(c.Angle+2.5, size*0.7)
	rx, ry := at(c.Angle-2.5, size*0.7)
	vector.StrokeLine(screen, nx, ny, lx, ly, 2, lineColor, true)
	vector.StrokeLine(screen, lx, ly, rx, ry, 2, lineColor, true)
	vector.StrokeLine(screen, rx, ry, nx, ny, 2, lineColor, true)

	if c.Flame > 0 {
		back := c.Angle + math.Pi
		bx, by := at(back, size*0.4)
		tx, ty := at(back, size*0.4+c.Flame)
		vector.StrokeLine(screen, bx, by, tx, ty, 3, flameColor, true)
	}
	if c.Shield {
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(size*1.2), 1.5, shieldColor, true)
	}
}

func strokePolygon(screen *ebiten.Image, points []object.Vertex, c color.Color) {
	for i, p := range points {
		q := points[(i+1)%len(points)]
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), 1.5, c, true)
	}
}

func hudText(h loop.HUDState) string {
	text := fmt.Sprintf("Score: %d  Lives: %d  Level: %d  Thrust: %.1fx", h.Score, h.Lives, h.Level, h.ThrustMultiplier)
	if h.PowerUp != "" && h.PowerUp != object.PowerUpNone.Effect().Label {
		text += "  " + h.PowerUp
	}
	return text
}

func drawCentered(screen *ebiten.Image, text string) {
	b := screen.Bounds()
	lines := strings.Split(text, "\n")
	top := b.Dy()/2 - len(lines)*debugGlyphHeight/2
	for i, l := range lines {
		x := b.Dx()/2 - len(l)*debugGlyphWidth/2
		ebitenutil.DebugPrintAt(screen, l, x, top+i*debugGlyphHeight)
	}
}
