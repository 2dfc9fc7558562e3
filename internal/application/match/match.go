// Package match owns one simulated match: both rosters, the ball, the
// tactical markers and the human-controlled actor.
package match

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/younwookim/pitch/internal/application/system"
	"github.com/younwookim/pitch/internal/domain/entity"
	"github.com/younwookim/pitch/internal/domain/kinematics"
	"github.com/younwookim/pitch/internal/infrastructure/config"
)

var (
	// ErrForeignActor is returned when control is handed to a non-home actor
	ErrForeignActor = errors.New("actor is not on the controlled team")
	// ErrUnknownActor is returned for an actor that is not in this match
	ErrUnknownActor = errors.New("actor is not in this match")
)

// ControlledTeam is the side that receives human input
const ControlledTeam = entity.TeamHome

// Match is the simulation context passed to every subsystem each tick
type Match struct {
	cfg *config.MatchConfig

	ball       *entity.Ball
	actors     []*entity.Actor // roster order: home slots, then away slots
	rosters    [entity.TeamCount][]*entity.Actor
	markers    [entity.TeamCount]*entity.Actor
	controlled *entity.Actor

	tick   uint64
	events []entity.Event

	ballSystem     *system.BallSystem
	movementSystem *system.MovementSystem
	kickSystem     *system.KickSystem
	aiSystem       *system.AISystem
	inputSystem    *system.InputSystem
}

// Option configures a Match
type Option func(*Match)

// WithAIOnly leaves every actor under AI control
func WithAIOnly() Option {
	return func(m *Match) {
		m.controlled = nil
	}
}

// New builds a match from a formation. The home side takes the slots as
// given; the away side is mirrored across the halfway line. seed drives
// kick lift and noise.
func New(cfg *config.MatchConfig, formation *config.FormationConfig, seed int64, opts ...Option) (*Match, error) {
	rng := rand.New(rand.NewSource(seed))
	m := &Match{
		cfg:            cfg,
		ball:           entity.NewBall(cfg.Ball.KickoffPoint()),
		ballSystem:     system.NewBallSystem(cfg.Field, cfg.Ball),
		movementSystem: system.NewMovementSystem(cfg.Movement),
		kickSystem:     system.NewKickSystem(cfg.Kick, rng),
		aiSystem:       system.NewAISystem(cfg.Field, cfg.AI),
		inputSystem:    system.NewInputSystem(cfg.Field),
	}

	var controlled, firstAttacker *entity.Actor
	for team := entity.TeamHome; team < entity.TeamCount; team++ {
		for i, slot := range formation.Slots {
			role, err := entity.ParseRole(slot.Role)
			if err != nil {
				return nil, fmt.Errorf("failed to place slot %d: %w", i, err)
			}

			home := kinematics.Vec3{X: slot.X, Y: cfg.Movement.GroundOffset, Z: slot.Z * team.AttackSign()}
			a := entity.NewActor(entity.ActorID(len(m.actors)), team, role, slot.Number, home)
			a.Name = slot.Name
			a.MaxSpeed = cfg.Movement.MaxSpeed(role)
			a.Accel = cfg.Movement.Acceleration
			a.Friction = cfg.Movement.Friction

			m.actors = append(m.actors, a)
			m.rosters[team] = append(m.rosters[team], a)

			if team != ControlledTeam {
				continue
			}
			if slot.Controlled && controlled == nil {
				controlled = a
			}
			if role == entity.RoleAttacker && firstAttacker == nil {
				firstAttacker = a
			}
		}
	}

	m.controlled = controlled
	if m.controlled == nil {
		m.controlled = firstAttacker
	}

	for _, opt := range opts {
		opt(m)
	}

	m.RecomputeTacticalMarkers()
	return m, nil
}

// Step advances the match by one tick. Every actor decides against the ball
// as it stood at the start of the tick; the ball moves last and collides with
// the actors' updated positions.
func (m *Match) Step(in system.InputState, dt float64) {
	m.tick++
	m.events = m.events[:0]

	m.RecomputeTacticalMarkers()
	if in.Switch && m.controlled != nil {
		m.SwitchToClosest()
	}

	for _, a := range m.actors {
		var dec system.Decision
		if a == m.controlled {
			dec = m.inputSystem.Decide(a, in)
		} else {
			dec = m.aiSystem.Decide(a, m)
		}
		m.apply(a, dec, dt)
	}

	if scorer, goal := m.ballSystem.Step(m.ball, m.actors, dt); goal {
		m.events = append(m.events, entity.Event{Kind: entity.EventGoal, Tick: m.tick, Team: scorer, Actor: entity.NoActor})
	}
}

// apply executes a decision: the kick first, then movement
func (m *Match) apply(a *entity.Actor, dec system.Decision, dt float64) {
	if dec.Kick != nil && m.kickSystem.Kick(a, m.ball, *dec.Kick) {
		m.events = append(m.events, entity.Event{
			Kind:  entity.EventKick,
			Tick:  m.tick,
			Team:  a.Team,
			Actor: a.ID,
			Mode:  dec.Kick.Mode,
		})
	}

	switch intent := dec.Move.(type) {
	case system.MoveIntent:
		m.movementSystem.MoveWithInput(a, intent.Direction, intent.SpeedMul, m.actors, dt)
	case system.SeekIntent:
		m.movementSystem.MoveWithTarget(a, intent.Target, intent.SpeedMul, m.actors, dt)
	default:
		m.movementSystem.MoveWithInput(a, kinematics.Vec3{}, 1, m.actors, dt)
	}
}

// RecomputeTacticalMarkers stores, per team, the actor closest to the ball.
// Earlier roster entries win exact ties.
func (m *Match) RecomputeTacticalMarkers() {
	for team := entity.TeamHome; team < entity.TeamCount; team++ {
		m.markers[team] = m.closest(team)
	}
}

func (m *Match) closest(team entity.Team) *entity.Actor {
	var best *entity.Actor
	bestSq := 0.0
	for _, a := range m.rosters[team] {
		d := kinematics.DistanceXZSq(a.Position, m.ball.Position)
		if best == nil || d < bestSq {
			best, bestSq = a, d
		}
	}
	return best
}

// SwitchToClosest hands control to the home actor nearest the ball
func (m *Match) SwitchToClosest() {
	m.controlled = m.closest(ControlledTeam)
}

// SetActiveActor hands control to a. A nil actor leaves both sides to the AI.
func (m *Match) SetActiveActor(a *entity.Actor) error {
	if a == nil {
		m.controlled = nil
		return nil
	}

	for _, known := range m.actors {
		if known != a {
			continue
		}
		if a.Team != ControlledTeam {
			return ErrForeignActor
		}
		m.controlled = a
		return nil
	}
	return ErrUnknownActor
}

// ResetFormation returns every actor home at rest and the ball to kickoff
func (m *Match) ResetFormation() {
	for _, a := range m.actors {
		a.Position = a.Home
		a.Velocity = kinematics.Vec3{}
		a.Facing = entity.KickoffFacing(a.Team)
	}
	m.ball.Reset(m.cfg.Ball.KickoffPoint())
	m.RecomputeTacticalMarkers()
}

// Ball returns a snapshot of the ball
func (m *Match) Ball() entity.Ball {
	return *m.ball
}

// Roster returns a team's actors in roster order
func (m *Match) Roster(team entity.Team) []*entity.Actor {
	return m.rosters[team]
}

// Marker returns a team's actor closest to the ball as of the last recompute
func (m *Match) Marker(team entity.Team) *entity.Actor {
	return m.markers[team]
}

// Actors returns every actor, home roster first
func (m *Match) Actors() []*entity.Actor {
	return m.actors
}

// Actor looks up an actor by ID
func (m *Match) Actor(id entity.ActorID) (*entity.Actor, bool) {
	if id < 0 || int(id) >= len(m.actors) {
		return nil, false
	}
	return m.actors[id], true
}

// Controlled returns the human-controlled actor, or nil
func (m *Match) Controlled() *entity.Actor {
	return m.controlled
}

// Events returns the events raised during the last tick. The slice is
// reused by the next Step.
func (m *Match) Events() []entity.Event {
	return m.events
}

// Tick returns the number of completed ticks
func (m *Match) Tick() uint64 {
	return m.tick
}
