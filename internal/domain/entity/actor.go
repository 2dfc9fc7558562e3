package entity

import (
	"strconv"

	"github.com/younwookim/pitch/internal/domain/kinematics"
)

// ActorID indexes an actor inside its match roster
type ActorID int

// NoActor marks an empty actor reference
const NoActor ActorID = -1

// Actor is a player on the pitch, driven either by human input or by the AI.
// Position.Y is pinned to the ground offset and Velocity stays planar.
type Actor struct {
	ID     ActorID
	Team   Team
	Role   Role
	Number int
	Name   string

	Home     kinematics.Vec3 // formation anchor
	Position kinematics.Vec3
	Velocity kinematics.Vec3
	Facing   float64 // yaw in radians, see kinematics.Vec3.Yaw

	// Movement tuning
	MaxSpeed float64
	Accel    float64 // approach rate toward the desired velocity (1/s)
	Friction float64 // approach rate toward rest when idle (1/s)
}

// NewActor places an actor at its home position, facing the opponent goal.
func NewActor(id ActorID, team Team, role Role, number int, home kinematics.Vec3) *Actor {
	return &Actor{
		ID:       id,
		Team:     team,
		Role:     role,
		Number:   number,
		Home:     home,
		Position: home,
		Facing:   KickoffFacing(team),
	}
}

// KickoffFacing returns the yaw of a team's attacking direction
func KickoffFacing(team Team) float64 {
	return kinematics.Vec3{Z: team.AttackSign()}.Yaw()
}

// IsGoalkeeper reports whether the actor keeps goal
func (a *Actor) IsGoalkeeper() bool {
	return a.Role == RoleGoalkeeper
}

// Label returns the display name, falling back to the shirt number
func (a *Actor) Label() string {
	if a.Name != "" {
		return a.Name
	}
	return "#" + strconv.Itoa(a.Number)
}

// Speed returns the planar speed
func (a *Actor) Speed() float64 {
	return a.Velocity.LengthXZ()
}
