package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/pitch/internal/domain/kinematics"
)

func TestNewActor(t *testing.T) {
	home := kinematics.Vec3{X: -8, Y: 0.9, Z: -22}
	a := NewActor(3, TeamHome, RoleDefender, 4, home)

	assert.Equal(t, ActorID(3), a.ID)
	assert.Equal(t, home, a.Position)
	assert.Equal(t, home, a.Home)
	assert.Equal(t, 0.0, a.Facing, "home side faces +Z")
	assert.False(t, a.IsGoalkeeper())

	away := NewActor(4, TeamAway, RoleGoalkeeper, 1, kinematics.Vec3{Z: 30})
	assert.InDelta(t, math.Pi, math.Abs(away.Facing), 1e-12, "away side faces -Z")
	assert.True(t, away.IsGoalkeeper())
}

func TestActorLabel(t *testing.T) {
	a := NewActor(0, TeamHome, RoleAttacker, 9, kinematics.Vec3{})
	assert.Equal(t, "#9", a.Label())

	a.Name = "Striker"
	assert.Equal(t, "Striker", a.Label())
}

func TestActorSpeed_IsPlanar(t *testing.T) {
	a := NewActor(0, TeamHome, RoleAttacker, 9, kinematics.Vec3{})
	a.Velocity = kinematics.Vec3{X: 3, Y: 100, Z: 4}
	assert.InDelta(t, 5, a.Speed(), 1e-12)
}
