package system

import (
	"math/rand"

	"github.com/younwookim/pitch/internal/domain/entity"
	"github.com/younwookim/pitch/internal/domain/kinematics"
	"github.com/younwookim/pitch/internal/infrastructure/config"
)

// KickSystem resolves kick intents into ball launches
type KickSystem struct {
	cfg config.KickConfig
	rng *rand.Rand
}

// NewKickSystem creates a kick system drawing lift and noise from rng
func NewKickSystem(cfg config.KickConfig, rng *rand.Rand) *KickSystem {
	return &KickSystem{
		cfg: cfg,
		rng: rng,
	}
}

// Kick launches the ball for the given actor. It is a no-op returning false
// when the ball is out of reach, already in fast flight, or the direction is
// degenerate.
func (s *KickSystem) Kick(a *entity.Actor, ball *entity.Ball, intent KickIntent) bool {
	if !s.InRange(a, ball) {
		return false
	}
	if !ball.Kickable(s.cfg.SpeedLimit) {
		return false
	}

	dir, ok := intent.Direction.NormalizeXZ()
	if !ok {
		return false
	}

	mode := s.cfg.Mode(intent.Mode)
	if mode.Noise > 0 {
		dir = dir.RotateXZ(s.uniform(-mode.Noise, mode.Noise))
	}

	ball.Velocity = dir.Scale(mode.PowerFor(intent.Distance))
	ball.Velocity.Y = s.uniform(mode.LiftMin, mode.LiftMax)
	ball.LastTouch = a.ID
	return true
}

// InRange reports whether the ball is close enough for the actor to kick
func (s *KickSystem) InRange(a *entity.Actor, ball *entity.Ball) bool {
	return kinematics.WithinXZ(a.Position, ball.Position, s.cfg.Range)
}

func (s *KickSystem) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
