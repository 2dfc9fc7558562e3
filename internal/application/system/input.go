package system

import (
	"github.com/younwookim/pitch/internal/domain/entity"
	"github.com/younwookim/pitch/internal/domain/kinematics"
	"github.com/younwookim/pitch/internal/infrastructure/config"
)

// InputState holds the abstract input for one tick. Forward is +Z, the
// direction the home side attacks.
type InputState struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Kick    bool
	Switch  bool
}

// Direction returns the held planar direction, normalized
func (in InputState) Direction() (kinematics.Vec3, bool) {
	var v kinematics.Vec3
	if in.Forward {
		v.Z++
	}
	if in.Back {
		v.Z--
	}
	if in.Left {
		v.X--
	}
	if in.Right {
		v.X++
	}
	return v.NormalizeXZ()
}

// InputSystem translates abstract input into decisions for the controlled actor
type InputSystem struct {
	field config.FieldConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(field config.FieldConfig) *InputSystem {
	return &InputSystem{field: field}
}

// Decide returns the controlled actor's decision for this tick
func (s *InputSystem) Decide(a *entity.Actor, in InputState) Decision {
	dir, moving := in.Direction()
	dec := Decision{Move: MoveIntent{ActorID: a.ID, Direction: dir, SpeedMul: 1}}
	if in.Kick {
		dec.Kick = s.kickIntent(a, dir, moving)
	}
	return dec
}

// kickIntent aims at the opponent goal, bent toward the held direction.
// Holding back toward the own goal lays the ball off softly instead.
func (s *InputSystem) kickIntent(a *entity.Actor, dir kinematics.Vec3, moving bool) *KickIntent {
	attack := kinematics.Vec3{Z: a.Team.AttackSign()}
	if moving && dir.DotXZ(attack) < 0 {
		return &KickIntent{ActorID: a.ID, Mode: entity.KickWeak, Direction: dir}
	}

	goal := s.field.GoalCenter(a.Team.Opponent())
	aim, ok := goal.Sub(a.Position).NormalizeXZ()
	if !ok {
		aim = attack
	}
	if moving {
		aim = aim.Add(dir)
	}
	return &KickIntent{ActorID: a.ID, Mode: entity.KickShoot, Direction: aim}
}
