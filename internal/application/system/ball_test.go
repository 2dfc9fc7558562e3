package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pitch/internal/domain/entity"
	"github.com/younwookim/pitch/internal/domain/kinematics"
)

func createTestBallSystem() *BallSystem {
	cfg := createTestConfig()
	return NewBallSystem(cfg.Field, cfg.Ball)
}

func TestBallSystem_GroundBounce(t *testing.T) {
	s := createTestBallSystem()
	ball := entity.NewBall(kinematics.Vec3{Y: 0.41})
	ball.Velocity = kinematics.Vec3{Y: -10}

	_, goal := s.Step(ball, nil, testDT)

	assert.False(t, goal)
	assert.Equal(t, 0.4, ball.Position.Y)
	assert.InDelta(t, 0.7*(10+25*testDT), ball.Velocity.Y, 1e-9)
}

func TestBallSystem_GroundFriction(t *testing.T) {
	s := createTestBallSystem()
	ball := entity.NewBall(kinematics.Vec3{Y: 0.4})
	ball.Velocity = kinematics.Vec3{X: 10, Z: -5}

	s.Step(ball, nil, testDT)

	assert.Equal(t, 0.4, ball.Position.Y)
	assert.Equal(t, 0.0, ball.Velocity.Y, "micro bounce is absorbed")
	assert.InDelta(t, 9.8, ball.Velocity.X, 1e-9)
	assert.InDelta(t, -4.9, ball.Velocity.Z, 1e-9)
}

func TestBallSystem_NoFrictionInFlight(t *testing.T) {
	s := createTestBallSystem()
	ball := entity.NewBall(kinematics.Vec3{Y: 5})
	ball.Velocity = kinematics.Vec3{X: 10}

	s.Step(ball, nil, testDT)

	assert.Equal(t, 10.0, ball.Velocity.X)
	assert.InDelta(t, -25*testDT, ball.Velocity.Y, 1e-9)
}

func TestBallSystem_EnergyDecay(t *testing.T) {
	s := createTestBallSystem()
	ball := entity.NewBall(kinematics.Vec3{Y: 8})

	var rebounds []float64
	settled := false
	for i := 0; i < 3000 && !settled; i++ {
		before := ball.Velocity.Y
		s.Step(ball, nil, testDT)
		if before < 0 && ball.Velocity.Y > 0 {
			rebounds = append(rebounds, ball.Velocity.Y)
		}
		settled = len(rebounds) > 0 && ball.Velocity.Y == 0 && ball.Position.Y == 0.4
	}

	require.True(t, settled, "ball should come to rest")
	require.NotEmpty(t, rebounds)
	assert.Less(t, len(rebounds), 20)
	for i := 1; i < len(rebounds); i++ {
		assert.Less(t, rebounds[i], rebounds[i-1], "bounce %d", i)
	}

	for i := 0; i < 60; i++ {
		s.Step(ball, nil, testDT)
		assert.Equal(t, 0.0, ball.Velocity.Y)
		assert.Equal(t, 0.4, ball.Position.Y)
	}
}

func TestBallSystem_SideWall(t *testing.T) {
	s := createTestBallSystem()
	ball := entity.NewBall(kinematics.Vec3{X: 49.99, Y: 5})
	ball.Velocity = kinematics.Vec3{X: 10}

	s.Step(ball, nil, testDT)

	assert.Equal(t, 50.0, ball.Position.X)
	assert.InDelta(t, -8.0, ball.Velocity.X, 1e-9)
}

func TestBallSystem_EndLine(t *testing.T) {
	tests := []struct {
		name   string
		x, z   float64
		vz     float64
		goal   bool
		scorer entity.Team
	}{
		{"centre scores for home", 0, 31.99, 5, true, entity.TeamHome},
		{"centre scores for away", 0, -31.99, -5, true, entity.TeamAway},
		{"inside post", 6.99, 31.99, 5, true, entity.TeamHome},
		{"on post reflects", 7, 31.99, 5, false, 0},
		{"on far post reflects", -7, -31.99, -5, false, 0},
		{"wide reflects", 20, 31.99, 5, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := createTestBallSystem()
			ball := entity.NewBall(kinematics.Vec3{X: tt.x, Y: 5, Z: tt.z})
			ball.Velocity = kinematics.Vec3{Z: tt.vz}
			ball.LastTouch = 3

			scorer, goal := s.Step(ball, nil, testDT)

			assert.Equal(t, tt.goal, goal)
			if tt.goal {
				assert.Equal(t, tt.scorer, scorer)
				assert.Equal(t, kinematics.Vec3{Y: 10}, ball.Position)
				assert.Equal(t, kinematics.Vec3{}, ball.Velocity)
				assert.Equal(t, entity.NoActor, ball.LastTouch)
				return
			}
			assert.Equal(t, math.Copysign(32, tt.z), ball.Position.Z)
			assert.Equal(t, tt.x, ball.Position.X, "lateral position keeps its sign")
			assert.InDelta(t, -0.8*tt.vz, ball.Velocity.Z, 1e-9)
		})
	}
}

func TestBallSystem_GoalSkipsPush(t *testing.T) {
	s := createTestBallSystem()
	keeper := createTestActor(0, entity.TeamAway, entity.RoleGoalkeeper, 0, 32)
	ball := entity.NewBall(kinematics.Vec3{Y: 0.4, Z: 31.99})
	ball.Velocity = kinematics.Vec3{Z: 5}

	_, goal := s.Step(ball, []*entity.Actor{keeper}, testDT)

	require.True(t, goal)
	assert.Equal(t, kinematics.Vec3{Y: 10}, ball.Position)
	assert.Equal(t, kinematics.Vec3{}, ball.Velocity)
}

func TestBallSystem_ActorPush(t *testing.T) {
	s := createTestBallSystem()
	a := createTestActor(4, entity.TeamHome, entity.RoleMidfielder, 0, 0)
	ball := entity.NewBall(kinematics.Vec3{X: 0.5, Y: 0.4})

	s.Step(ball, []*entity.Actor{a}, testDT)

	assert.InDelta(t, 5*testDT, ball.Velocity.X, 1e-9)
	assert.InDelta(t, 0.5+2*testDT, ball.Position.X, 1e-9)
	assert.Equal(t, 0.0, ball.Velocity.Z)
	assert.Equal(t, entity.ActorID(4), ball.LastTouch)
}

func TestBallSystem_PushSkipped(t *testing.T) {
	tests := []struct {
		name string
		pos  kinematics.Vec3
	}{
		{"above contact height", kinematics.Vec3{X: 0.5, Y: 3}},
		{"outside contact radius", kinematics.Vec3{X: 1.5, Y: 0.4}},
		{"degenerate direction", kinematics.Vec3{Y: 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := createTestBallSystem()
			a := createTestActor(1, entity.TeamHome, entity.RoleMidfielder, 0, 0)
			ball := entity.NewBall(tt.pos)

			s.Step(ball, []*entity.Actor{a}, testDT)

			assert.Equal(t, 0.0, ball.Velocity.X)
			assert.Equal(t, 0.0, ball.Velocity.Z)
			assert.Equal(t, entity.NoActor, ball.LastTouch)
		})
	}
}
