package client

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/powerroids/internal/draw"
	"github.com/tomz197/powerroids/internal/loop"
	"github.com/tomz197/powerroids/internal/loop/config"
	"github.com/tomz197/powerroids/internal/object"
)

const (
	starMinVisibleAlpha = 0.6
	craftWingAngle      = 2.5 // Radians from the nose
	craftWingScale      = 0.7
	powerUpPulseAmount  = 0.25
)

type styles struct {
	hud     lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	powerUp lipgloss.Style
	title   lipgloss.Style
	subtle  lipgloss.Style
	message lipgloss.Style
	warning lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		hud:     r.NewStyle().Bold(true),
		label:   r.NewStyle().Foreground(lipgloss.Color("245")),
		value:   r.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		powerUp: r.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		title:   r.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		subtle:  r.NewStyle().Foreground(lipgloss.Color("241")),
		message: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2).
			Bold(true),
		warning: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(0, 2),
	}
}

var titleArt = []string{
	` ___  _____      _____ ___ ___  ___  ___ ___  ___  `,
	`| _ \/ _ \ \    / / __| _ \ _ \/ _ \|_ _|   \/ __| `,
	`|  _/ (_) \ \/\/ /| _||   /   / (_) || || |) \__ \ `,
	`|_|  \___/ \_/\_/ |___|_|_\_|_\\___/|___|___/|___/ `,
}

var controls = []string{
	"W / Up             thrust",
	"A D / Left Right   rotate",
	"Space              fire",
	"- / =              thrust power",
	"R / Enter          restart after game over",
	"Q                  quit",
}

// drawFrame writes one frame to the terminal.
func (c *Client) drawFrame(now time.Time) error {
	snap, hud, ready := c.frames.load()

	var buf strings.Builder
	st := c.state
	cleared := st.needsClear || st.Screen != st.prevScreen || st.isInactive != st.wasInactive || hud.Message != st.prevMessage
	if cleared {
		buf.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		st.prevScreen = st.Screen
		st.wasInactive = st.isInactive
		st.prevMessage = hud.Message
		st.needsClear = false
	}

	centerCol := c.termWidth/2 + 1
	centerRow := c.termHeight/2 + 1

	switch {
	case st.Screen == ScreenShutdown:
		c.drawShutdownScreen(&buf, now, centerCol, centerRow)
	case st.isInactive:
		c.drawInactivityScreen(&buf, now, centerCol, centerRow)
	case st.Screen == ScreenTitle:
		// Static; only redrawn after a clear.
		if cleared {
			c.drawTitleScreen(&buf, centerCol, centerRow)
		}
	case ready:
		c.drawSnapshot(snap, hud)
		if err := c.canvas.Render(&buf); err != nil {
			return err
		}
		if err := c.canvas.RenderBorder(&buf); err != nil {
			return err
		}
		draw.MoveCursor(&buf, 1, 1)
		buf.WriteString(c.hudLine(hud))
		if hud.Message != "" {
			writeBlock(&buf, c.styles.message.Render(hud.Message), centerCol, centerRow)
		}
	}

	return draw.WriteChunked(c.writer, buf.String())
}

// drawSnapshot rasterizes the scene onto the canvas.
func (c *Client) drawSnapshot(s loop.Snapshot, hud loop.HUDState) {
	cv := c.canvas
	cv.SetLogicalSize(s.Field.Width, s.Field.Height)
	cv.Clear()

	for _, star := range s.Stars {
		if star.Alpha >= starMinVisibleAlpha {
			cv.SetFloat(star.X, star.Y)
		}
	}

	for i := range s.Asteroids {
		outline := s.Asteroids[i].Outline()
		points := cv.BorrowPoints(len(outline))
		for j, v := range outline {
			points[j] = draw.Point{X: v.X, Y: v.Y}
		}
		cv.DrawPolygon(points, false)
	}

	for _, p := range s.Projectiles {
		cv.DrawCircle(p.X, p.Y, p.Radius, true)
	}

	for _, p := range s.PowerUps {
		r := p.Radius * (1 + powerUpPulseAmount*math.Sin(p.PulsePhase))
		cv.DrawCircle(p.X, p.Y, r, false)
		cv.SetFloat(p.X, p.Y)
	}

	if hud.Phase != loop.PhaseGameOver && s.Craft.Visible() {
		drawCraft(cv, &s.Craft)
	}
}

func drawCraft(cv *draw.Canvas, cr *object.Craft) {
	size := cr.Radius * 2
	nose := draw.Point{
		X: cr.X + math.Cos(cr.Angle)*size,
		Y: cr.Y + math.Sin(cr.Angle)*size,
	}
	left := draw.Point{
		X: cr.X + math.Cos(cr.Angle+craftWingAngle)*size*craftWingScale,
		Y: cr.Y + math.Sin(cr.Angle+craftWingAngle)*size*craftWingScale,
	}
	right := draw.Point{
		X: cr.X + math.Cos(cr.Angle-craftWingAngle)*size*craftWingScale,
		Y: cr.Y + math.Sin(cr.Angle-craftWingAngle)*size*craftWingScale,
	}
	cv.DrawPolygon([]draw.Point{nose, left, right}, false)

	if cr.Flame > 0 {
		back := cr.Angle + math.Pi
		base := draw.Point{
			X: cr.X + math.Cos(back)*size*0.4,
			Y: cr.Y + math.Sin(back)*size*0.4,
		}
		tip := draw.Point{
			X: base.X + math.Cos(back)*cr.Flame,
			Y: base.Y + math.Sin(back)*cr.Flame,
		}
		cv.DrawLine(base, tip)
	}

	if cr.Shield {
		cv.DrawCircle(cr.X, cr.Y, size*1.2, false)
	}
}

// hudLine formats the status bar, padded to the terminal width so stale
// characters from a longer previous line are overwritten.
func (c *Client) hudLine(h loop.HUDState) string {
	s := c.styles
	field := func(label, value string) string {
		return s.label.Render(label+":") + " " + s.value.Render(value)
	}
	parts := []string{
		field("Score", fmt.Sprint(h.Score)),
		field("Lives", fmt.Sprint(h.Lives)),
		field("Level", fmt.Sprint(h.Level)),
		field("Thrust", fmt.Sprintf("%.1fx", h.ThrustMultiplier)),
	}
	if h.PowerUp != "" && h.PowerUp != object.PowerUpNone.Effect().Label {
		parts = append(parts, s.powerUp.Render(h.PowerUp))
	}
	line := strings.Join(parts, "   ")
	if c.termWidth > 0 {
		return s.hud.Width(c.termWidth).MaxWidth(c.termWidth).Render(line)
	}
	return s.hud.Render(line)
}

func (c *Client) drawTitleScreen(buf *strings.Builder, centerCol, centerRow int) {
	s := c.styles
	var lines []string
	for _, l := range titleArt {
		lines = append(lines, s.title.Render(l))
	}
	lines = append(lines, "")
	if c.username != "" {
		lines = append(lines, "Welcome, "+c.username, "")
	}
	for _, l := range controls {
		lines = append(lines, s.subtle.Render(l))
	}
	lines = append(lines, "", s.value.Render("Press SPACE to start"))
	writeBlock(buf, lipgloss.JoinVertical(lipgloss.Center, lines...), centerCol, centerRow)
}

func (c *Client) drawInactivityScreen(buf *strings.Builder, now time.Time, centerCol, centerRow int) {
	left := int(config.InactivityDisconnectUser - now.Sub(c.lastInput).Seconds())
	body := lipgloss.JoinVertical(lipgloss.Center,
		"INACTIVITY WARNING",
		"",
		fmt.Sprintf("You will be disconnected in %d seconds.", max(left, 0)),
		"Press any key to continue",
	)
	writeBlock(buf, c.styles.warning.Render(body), centerCol, centerRow)
}

func (c *Client) drawShutdownScreen(buf *strings.Builder, now time.Time, centerCol, centerRow int) {
	left := int(math.Ceil(c.state.shutdownDeadline.Sub(now).Seconds()))
	body := lipgloss.JoinVertical(lipgloss.Center,
		"SERVER SHUTTING DOWN",
		"",
		fmt.Sprintf("Disconnecting in %d seconds", max(left, 0)),
		"Press Q to quit now",
	)
	writeBlock(buf, c.styles.warning.Render(body), centerCol, centerRow)
}

// writeBlock writes a multi-line block centered on (centerCol, centerRow).
func writeBlock(buf *strings.Builder, block string, centerCol, centerRow int) {
	lines := strings.Split(block, "\n")
	width := lipgloss.Width(block)
	col := max(centerCol-width/2, 1)
	row := max(centerRow-len(lines)/2, 1)
	for i, l := range lines {
		draw.MoveCursor(buf, col, row+i)
		buf.WriteString(l)
	}
}
