package system

import (
	"github.com/younwookim/pitch/internal/domain/entity"
	"github.com/younwookim/pitch/internal/domain/kinematics"
)

// Intent represents an action that an actor wants to perform
type Intent interface {
	isIntent()
}

// MoveIntent represents a held movement direction (human control)
type MoveIntent struct {
	ActorID   entity.ActorID
	Direction kinematics.Vec3 // planar unit vector, zero when idle
	SpeedMul  float64
}

func (MoveIntent) isIntent() {}

// SeekIntent represents movement toward a target point (AI control)
type SeekIntent struct {
	ActorID  entity.ActorID
	Target   kinematics.Vec3
	SpeedMul float64
}

func (SeekIntent) isIntent() {}

// KickIntent represents a kick attempt
type KickIntent struct {
	ActorID   entity.ActorID
	Mode      entity.KickMode
	Direction kinematics.Vec3 // need not be normalized
	Distance  float64         // target distance, scales pass power
}

func (KickIntent) isIntent() {}

// Decision is the result of one actor's decision step. Move is a MoveIntent
// or SeekIntent (nil means decelerate in place); Kick is optional.
type Decision struct {
	Move Intent
	Kick *KickIntent
}
