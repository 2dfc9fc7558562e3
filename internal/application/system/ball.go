package system

import (
	"math"

	"github.com/younwookim/pitch/internal/domain/entity"
	"github.com/younwookim/pitch/internal/domain/kinematics"
	"github.com/younwookim/pitch/internal/infrastructure/config"
)

// BallSystem integrates ball flight and resolves field and actor contacts
type BallSystem struct {
	field config.FieldConfig
	cfg   config.BallConfig
}

// NewBallSystem creates a new ball system
func NewBallSystem(field config.FieldConfig, cfg config.BallConfig) *BallSystem {
	return &BallSystem{
		field: field,
		cfg:   cfg,
	}
}

// Step advances the ball by dt. When the ball crosses an end line inside the
// goal mouth it is reset to the kickoff point and Step reports the scoring team;
// no further physics runs for that tick.
func (s *BallSystem) Step(ball *entity.Ball, actors []*entity.Actor, dt float64) (entity.Team, bool) {
	ball.Velocity.Y -= s.cfg.Gravity * dt
	ball.Position = ball.Position.Add(ball.Velocity.Scale(dt))

	s.applyGround(ball)
	s.applySides(ball)

	if scorer, goal := s.applyEnds(ball); goal {
		ball.Reset(s.cfg.KickoffPoint())
		return scorer, true
	}

	s.applyPush(ball, actors, dt)
	return 0, false
}

// applyGround bounces the ball off the ground and applies rolling friction
func (s *BallSystem) applyGround(ball *entity.Ball) {
	if ball.Position.Y < s.cfg.GroundHeight {
		ball.Position.Y = s.cfg.GroundHeight
		ball.Velocity.Y = -ball.Velocity.Y * s.cfg.Restitution
		if math.Abs(ball.Velocity.Y) < s.cfg.StopBounceSpeed {
			ball.Velocity.Y = 0
		}
	}

	if ball.Position.Y <= s.cfg.GroundHeight+s.cfg.GroundTolerance {
		ball.Velocity.X *= s.cfg.GroundFriction
		ball.Velocity.Z *= s.cfg.GroundFriction
	}
}

// applySides reflects the ball off the touchlines
func (s *BallSystem) applySides(ball *entity.Ball) {
	hw := s.field.HalfWidth()
	if math.Abs(ball.Position.X) > hw {
		ball.Position.X = kinematics.Sign(ball.Position.X) * hw
		ball.Velocity.X *= -s.cfg.WallDamping
	}
}

// applyEnds reflects the ball off the end lines or reports a goal.
// Crossing +Z scores for the home side, -Z for the away side.
func (s *BallSystem) applyEnds(ball *entity.Ball) (entity.Team, bool) {
	hd := s.field.HalfDepth()
	if math.Abs(ball.Position.Z) <= hd {
		return 0, false
	}

	if math.Abs(ball.Position.X) < s.field.HalfGoalWidth() {
		if ball.Position.Z > 0 {
			return entity.TeamHome, true
		}
		return entity.TeamAway, true
	}

	ball.Position.Z = kinematics.Sign(ball.Position.Z) * hd
	ball.Velocity.Z *= -s.cfg.WallDamping
	return 0, false
}

// applyPush nudges the ball away from every actor it overlaps
func (s *BallSystem) applyPush(ball *entity.Ball, actors []*entity.Actor, dt float64) {
	if ball.Position.Y >= s.cfg.ContactHeight {
		return
	}

	for _, a := range actors {
		if !kinematics.WithinXZ(ball.Position, a.Position, s.cfg.ContactRadius) {
			continue
		}

		dir, ok := ball.Position.Sub(a.Position).NormalizeXZ()
		if !ok {
			continue
		}

		ball.Velocity = ball.Velocity.Add(dir.Scale(s.cfg.PushImpulse * dt))
		ball.Position = ball.Position.Add(dir.Scale(s.cfg.PushNudge * dt))
		ball.LastTouch = a.ID
	}
}
