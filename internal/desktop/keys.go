package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/powerroids/internal/input"
)

// Keyboard reports key state for the current frame.
type Keyboard interface {
	IsKeyPressed(ebiten.Key) bool
	IsKeyJustPressed(ebiten.Key) bool
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) IsKeyPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeyboard) IsKeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Controls is one frame of keyboard input.
type Controls struct {
	Intent  input.Intent
	Start   bool
	Restart bool
	Quit    bool
}

var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	thrustKeys  = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	fireKeys    = []ebiten.Key{ebiten.KeySpace}
	slowerKeys  = []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}
	fasterKeys  = []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}
	startKeys   = []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}
	restartKeys = []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// ReadControls maps the keyboard to controls. Held keys drive the continuous
// intents; thrust adjustment and commands trigger once per press.
func ReadControls(kb Keyboard) Controls {
	return Controls{
		Intent: input.Intent{
			TurnLeft:       anyPressed(kb, leftKeys),
			TurnRight:      anyPressed(kb, rightKeys),
			Thrusting:      anyPressed(kb, thrustKeys),
			Firing:         anyPressed(kb, fireKeys),
			DecreaseThrust: anyJustPressed(kb, slowerKeys),
			IncreaseThrust: anyJustPressed(kb, fasterKeys),
		},
		Start:   anyJustPressed(kb, startKeys),
		Restart: anyJustPressed(kb, restartKeys),
		Quit:    anyJustPressed(kb, quitKeys),
	}
}

func anyPressed(kb Keyboard, keys []ebiten.Key) bool {
	for _, k := range keys {
		if kb.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(kb Keyboard, keys []ebiten.Key) bool {
	for _, k := range keys {
		if kb.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
