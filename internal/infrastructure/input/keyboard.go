// Package input polls the keyboard and converts it to abstract match input.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/pitch/internal/application/system"
)

// KeyFunc reports the state of a key
type KeyFunc func(ebiten.Key) bool

// Keyboard maps WASD or the arrow keys to movement, Space to kick and Tab to
// switch the controlled actor
type Keyboard struct {
	pressed     KeyFunc
	justPressed KeyFunc
}

// NewKeyboard creates a keyboard source backed by ebiten
func NewKeyboard() *Keyboard {
	return NewKeyboardWith(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

// NewKeyboardWith creates a keyboard source over custom key state functions
func NewKeyboardWith(pressed, justPressed KeyFunc) *Keyboard {
	return &Keyboard{
		pressed:     pressed,
		justPressed: justPressed,
	}
}

// Poll reads the input for this tick
func (k *Keyboard) Poll() system.InputState {
	return system.InputState{
		Forward: k.any(ebiten.KeyW, ebiten.KeyArrowUp),
		Back:    k.any(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:    k.any(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:   k.any(ebiten.KeyD, ebiten.KeyArrowRight),
		Kick:    k.pressed(ebiten.KeySpace),
		Switch:  k.justPressed(ebiten.KeyTab),
	}
}

// PausePressed reports an Escape press this tick
func (k *Keyboard) PausePressed() bool {
	return k.justPressed(ebiten.KeyEscape)
}

// SavePressed reports an F5 press this tick
func (k *Keyboard) SavePressed() bool {
	return k.justPressed(ebiten.KeyF5)
}

func (k *Keyboard) any(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if k.pressed(key) {
			return true
		}
	}
	return false
}
