package system

import (
	"github.com/younwookim/pitch/internal/domain/entity"
	"github.com/younwookim/pitch/internal/domain/kinematics"
	"github.com/younwookim/pitch/internal/infrastructure/config"
)

const testDT = 1.0 / 60.0

func createTestConfig() *config.MatchConfig {
	return config.DefaultMatchConfig()
}

func createTestActor(id entity.ActorID, team entity.Team, role entity.Role, x, z float64) *entity.Actor {
	cfg := createTestConfig().Movement
	a := entity.NewActor(id, team, role, int(id)+1, kinematics.Vec3{X: x, Y: cfg.GroundOffset, Z: z})
	a.MaxSpeed = cfg.MaxSpeed(role)
	a.Accel = cfg.Acceleration
	a.Friction = cfg.Friction
	return a
}

// fakeWorld is a fixed World for decision tests
type fakeWorld struct {
	ball    entity.Ball
	rosters [entity.TeamCount][]*entity.Actor
	markers [entity.TeamCount]*entity.Actor
}

func newFakeWorld(ballX, ballZ float64) *fakeWorld {
	return &fakeWorld{ball: *entity.NewBall(kinematics.Vec3{X: ballX, Y: 0.4, Z: ballZ})}
}

func (w *fakeWorld) add(a *entity.Actor) *entity.Actor {
	w.rosters[a.Team] = append(w.rosters[a.Team], a)
	return a
}

func (w *fakeWorld) Ball() entity.Ball                    { return w.ball }
func (w *fakeWorld) Roster(t entity.Team) []*entity.Actor { return w.rosters[t] }
func (w *fakeWorld) Marker(t entity.Team) *entity.Actor   { return w.markers[t] }
