// Package game adapts a Scene stack to ebiten.Game.
package game

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pitch/internal/application/scene"
	"github.com/younwookim/pitch/internal/infrastructure/logging"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	logger  *log.Logger
}

// Option configures a Game
type Option func(*Game)

// WithLogger routes scene transition logs to logger
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, opts ...Option) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger.Debug("enter scene", "scene", scene.NameOf(g.current))
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// scene.ErrQuit and a closing window are reported to ebiten as a clean
// termination after the current scene exits.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.current.OnExit()
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	if errors.Is(err, scene.ErrQuit) {
		g.current.OnExit()
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if next != nil {
		g.logger.Debug("switch scene", "from", scene.NameOf(g.current), "to", scene.NameOf(next))
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time passed to scenes.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
