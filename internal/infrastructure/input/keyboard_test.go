package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/pitch/internal/application/system"
)

func keySet(keys ...ebiten.Key) KeyFunc {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestKeyboard_Poll(t *testing.T) {
	tests := []struct {
		name     string
		pressed  []ebiten.Key
		just     []ebiten.Key
		expected system.InputState
	}{
		{"idle", nil, nil, system.InputState{}},
		{"wasd", []ebiten.Key{ebiten.KeyW, ebiten.KeyD}, nil, system.InputState{Forward: true, Right: true}},
		{"arrows", []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyArrowLeft}, nil, system.InputState{Back: true, Left: true}},
		{"kick held", []ebiten.Key{ebiten.KeySpace}, nil, system.InputState{Kick: true}},
		{"switch edge", []ebiten.Key{ebiten.KeyTab}, []ebiten.Key{ebiten.KeyTab}, system.InputState{Switch: true}},
		{"tab held without edge", []ebiten.Key{ebiten.KeyTab}, nil, system.InputState{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := NewKeyboardWith(keySet(tt.pressed...), keySet(tt.just...))

			assert.Equal(t, tt.expected, k.Poll())
		})
	}
}

func TestKeyboard_HostKeys(t *testing.T) {
	k := NewKeyboardWith(keySet(), keySet(ebiten.KeyEscape))

	assert.True(t, k.PausePressed())
	assert.False(t, k.SavePressed())
}
