package system

import (
	"github.com/younwookim/pitch/internal/domain/entity"
	"github.com/younwookim/pitch/internal/domain/kinematics"
	"github.com/younwookim/pitch/internal/infrastructure/config"
)

// MovementSystem integrates actor velocity and position with soft separation
type MovementSystem struct {
	cfg config.MovementConfig
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(cfg config.MovementConfig) *MovementSystem {
	return &MovementSystem{cfg: cfg}
}

// MoveWithInput moves an actor along a held direction. A zero direction
// decelerates the actor toward rest.
func (s *MovementSystem) MoveWithInput(a *entity.Actor, dir kinematics.Vec3, speedMul float64, others []*entity.Actor, dt float64) {
	d, ok := dir.NormalizeXZ()
	s.integrate(a, d, ok, speedMul, others, dt)
}

// MoveWithTarget moves an actor toward a point. Targets within the arrive
// radius count as reached and the actor decelerates.
func (s *MovementSystem) MoveWithTarget(a *entity.Actor, target kinematics.Vec3, speedMul float64, others []*entity.Actor, dt float64) {
	if kinematics.WithinXZ(a.Position, target, s.cfg.ArriveEpsilon) {
		s.integrate(a, kinematics.Vec3{}, false, speedMul, others, dt)
		return
	}

	d, ok := target.Sub(a.Position).NormalizeXZ()
	s.integrate(a, d, ok, speedMul, others, dt)
}

func (s *MovementSystem) integrate(a *entity.Actor, dir kinematics.Vec3, hasDir bool, speedMul float64, others []*entity.Actor, dt float64) {
	desired := kinematics.Vec3{}
	rate := a.Friction
	if hasDir {
		desired = dir.Scale(a.MaxSpeed * speedMul)
		rate = a.Accel
	}

	a.Velocity = kinematics.Lerp(a.Velocity, desired, kinematics.Clamp(dt*rate, 0, 1))
	a.Velocity.Y = 0

	proposed := a.Position.Add(a.Velocity.Scale(dt))
	if s.blocked(a, proposed, others) {
		a.Velocity = kinematics.Vec3{}
	} else {
		a.Position = proposed
	}

	if hasDir {
		a.Facing = dir.Yaw()
	}
	a.Position.Y = s.cfg.GroundOffset
}

// blocked reports whether moving to p would bring the actor inside the
// separation radius of another actor. Moves that widen an existing overlap
// are allowed so that actors spawned on top of each other can part.
func (s *MovementSystem) blocked(a *entity.Actor, p kinematics.Vec3, others []*entity.Actor) bool {
	minSq := s.cfg.MinSeparation * s.cfg.MinSeparation
	for _, o := range others {
		if o == a {
			continue
		}
		next := kinematics.DistanceXZSq(p, o.Position)
		if next >= minSq {
			continue
		}
		if next <= kinematics.DistanceXZSq(a.Position, o.Position) {
			return true
		}
	}
	return false
}
