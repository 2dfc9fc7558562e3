package scene

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type plainScene struct{}

func (plainScene) Update(float64) (Scene, error) { return nil, nil }
func (plainScene) Draw(*ebiten.Image)            {}
func (plainScene) OnEnter()                      {}
func (plainScene) OnExit()                       {}

type namedScene struct{ plainScene }

func (namedScene) Name() string { return "pitch" }

func TestNameOf(t *testing.T) {
	assert.Equal(t, "scene", NameOf(plainScene{}))
	assert.Equal(t, "pitch", NameOf(namedScene{}))
}
