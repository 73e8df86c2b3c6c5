package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings maps keys to intents
type KeyBindings struct {
	Left    []ebiten.Key
	Right   []ebiten.Key
	Jump    []ebiten.Key
	Restart []ebiten.Key
}

// DefaultKeyBindings returns arrow keys + Space + R, with A/D/W alternates
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Jump:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
		Restart: []ebiten.Key{ebiten.KeyR},
	}
}

// InputSystem handles player input
type InputSystem struct {
	bindings KeyBindings
}

// NewInputSystem creates a new input system
func NewInputSystem(bindings KeyBindings) *InputSystem {
	return &InputSystem{bindings: bindings}
}

// GetInput reads the current input state.
// Respawn is left to the session, which decides between respawn and reload.
func (s *InputSystem) GetInput() Intents {
	return Intents{
		Left:    anyPressed(s.bindings.Left),
		Right:   anyPressed(s.bindings.Right),
		Jump:    anyJustPressed(s.bindings.Jump),
		Restart: anyJustPressed(s.bindings.Restart),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
