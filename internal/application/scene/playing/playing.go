// Package playing provides the match scene: it polls input, steps the match,
// keeps the score and draws a top-down view of the pitch.
package playing

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/pitch/internal/application/match"
	"github.com/younwookim/pitch/internal/application/replay"
	"github.com/younwookim/pitch/internal/application/scene"
	"github.com/younwookim/pitch/internal/application/state"
	"github.com/younwookim/pitch/internal/application/system"
	"github.com/younwookim/pitch/internal/domain/entity"
	"github.com/younwookim/pitch/internal/infrastructure/config"
	"github.com/younwookim/pitch/internal/infrastructure/input"
	"github.com/younwookim/pitch/internal/infrastructure/logging"
)

// InputSource supplies per-tick match input and scene controls
type InputSource interface {
	Poll() system.InputState
	PausePressed() bool
	SavePressed() bool
}

// Playing is the main match scene
type Playing struct {
	config *config.GameConfig
	match  *match.Match
	score  match.Scoreboard
	state  state.GameState
	input  InputSource
	logger *log.Logger

	seed     int64
	aiOnly   bool
	duration uint64 // ticks until full time, 0 = unlimited
	freeze   float64

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// Option configures a Playing scene
type Option func(*Playing)

// WithSeed fixes the match seed. Without it the scene seeds from the clock.
func WithSeed(seed int64) Option {
	return func(p *Playing) { p.seed = seed }
}

// WithInput replaces the keyboard source
func WithInput(src InputSource) Option {
	return func(p *Playing) { p.input = src }
}

// WithLogger sets the scene logger
func WithLogger(logger *log.Logger) Option {
	return func(p *Playing) { p.logger = logger }
}

// WithRecording records every simulated tick and saves it to path on exit
func WithRecording(path string) Option {
	return func(p *Playing) { p.recordFilename = path }
}

// WithAIOnly hands both teams to the AI
func WithAIOnly() Option {
	return func(p *Playing) { p.aiOnly = true }
}

// WithDuration ends the match after the given number of ticks
func WithDuration(ticks uint64) Option {
	return func(p *Playing) { p.duration = ticks }
}

// New creates a new Playing scene.
func New(cfg *config.GameConfig, opts ...Option) (*Playing, error) {
	p := &Playing{
		config: cfg,
		state:  state.StateKickoff,
		seed:   time.Now().UnixNano(),
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.input == nil {
		p.input = input.NewKeyboard()
	}

	var matchOpts []match.Option
	if p.aiOnly {
		matchOpts = append(matchOpts, match.WithAIOnly())
	}
	m, err := match.New(cfg.Match, cfg.Formation, p.seed, matchOpts...)
	if err != nil {
		return nil, err
	}
	p.match = m

	if p.recordFilename != "" {
		p.recorder = replay.NewRecorder(p.seed, cfg.Formation.Name, p.aiOnly)
		p.logger.Info("recording enabled", "file", p.recordFilename, "seed", p.seed, "match", p.recorder.MatchID())
	}

	return p, nil
}

// Name implements scene.Named
func (p *Playing) Name() string {
	return "playing"
}

// Update proceeds the match state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.state == state.StateKickoff {
		p.logger.Info("kickoff", "score", p.score.String(), "tick", p.match.Tick())
		p.state = state.StatePlaying
	}
	if p.state.Simulating() {
		p.updatePlaying(dt)
		return nil, nil
	}

	switch p.state {
	case state.StatePaused:
		if p.input.PausePressed() {
			p.state = state.StatePlaying
		}
	case state.StateGoalFreeze:
		p.freeze -= dt
		if p.freeze <= 0 {
			p.match.ResetFormation()
			p.state = state.StateKickoff
		}
	case state.StateFullTime:
		if p.input.PausePressed() {
			return nil, scene.ErrQuit
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying(dt float64) {
	if p.input.PausePressed() {
		p.state = state.StatePaused
		return
	}

	// F5: save recording manually
	if p.input.SavePressed() {
		p.saveRecording()
	}

	in := p.input.Poll()
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	p.match.Step(in, dt)
	p.handleEvents(p.match.Events())

	if p.duration > 0 && p.match.Tick() >= p.duration {
		p.logger.Info("full time", "score", p.score.String(), "ticks", p.match.Tick())
		p.state = state.StateFullTime
		if p.recorder != nil {
			p.recorder.Stop()
		}
		p.saveRecording()
	}
}

// handleEvents folds a tick's events into the score and starts the goal freeze
func (p *Playing) handleEvents(events []entity.Event) {
	for _, e := range events {
		if e.Kind == entity.EventKick {
			p.logger.Debug("kick", "actor", e.Actor, "team", e.Team, "mode", e.Mode, "tick", e.Tick)
		}
	}
	if !p.score.Record(events) {
		return
	}
	p.logger.Info("goal", "team", p.score.LastScorer, "score", p.score.String(), "tick", p.score.LastTick)
	p.freeze = p.config.Match.Display.GoalFreeze
	p.state = state.StateGoalFreeze
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = p.recorder.GenerateFilename(replay.FormatJSON)
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "file", filename, "err", err)
		return
	}
	p.logger.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
}

// OnEnter is called when entering the scene
func (p *Playing) OnEnter() {
	p.logger.Debug("scene enter", "formation", p.config.Formation.Name, "seed", p.seed, "aiOnly", p.aiOnly)
}

// OnExit saves any pending recording
func (p *Playing) OnExit() {
	p.saveRecording()
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Score returns the running score
func (p *Playing) Score() match.Scoreboard {
	return p.score
}

// Match returns the simulated match
func (p *Playing) Match() *match.Match {
	return p.match
}

// Seed returns the match seed
func (p *Playing) Seed() int64 {
	return p.seed
}

// Recorder returns the active recorder, or nil when not recording
func (p *Playing) Recorder() *replay.Recorder {
	return p.recorder
}
