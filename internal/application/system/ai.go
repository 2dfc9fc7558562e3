package system

import (
	"math"

	"github.com/younwookim/pitch/internal/domain/entity"
	"github.com/younwookim/pitch/internal/domain/kinematics"
	"github.com/younwookim/pitch/internal/infrastructure/config"
)

// World is the read-only view of the match an AI actor decides from
type World interface {
	Ball() entity.Ball
	Roster(team entity.Team) []*entity.Actor
	Marker(team entity.Team) *entity.Actor
}

// Tactic is the behaviour an AI actor runs this tick
type Tactic int

const (
	TacticCover Tactic = iota
	TacticPresser
	TacticKeeper
)

func (t Tactic) String() string {
	switch t {
	case TacticCover:
		return "cover"
	case TacticPresser:
		return "presser"
	case TacticKeeper:
		return "keeper"
	default:
		return "unknown"
	}
}

type behaviour func(a *entity.Actor, w World) Decision

// AISystem picks targets, passes and shots for AI-controlled actors
type AISystem struct {
	field      config.FieldConfig
	cfg        config.AIConfig
	behaviours map[Tactic]behaviour
}

// NewAISystem creates a new AI system
func NewAISystem(field config.FieldConfig, cfg config.AIConfig) *AISystem {
	s := &AISystem{
		field: field,
		cfg:   cfg,
	}
	s.behaviours = map[Tactic]behaviour{
		TacticKeeper:  s.keeper,
		TacticPresser: s.presser,
		TacticCover:   s.cover,
	}
	return s
}

// TacticFor returns the behaviour an actor runs. Goalkeepers always keep,
// even when they are their team's marker.
func (s *AISystem) TacticFor(a *entity.Actor, w World) Tactic {
	if a.IsGoalkeeper() {
		return TacticKeeper
	}
	if w.Marker(a.Team) == a {
		return TacticPresser
	}
	return TacticCover
}

// Decide runs the actor's behaviour against the current world
func (s *AISystem) Decide(a *entity.Actor, w World) Decision {
	return s.behaviours[s.TacticFor(a, w)](a, w)
}

func (s *AISystem) seek(a *entity.Actor, target kinematics.Vec3, speedMul float64) Decision {
	return Decision{Move: SeekIntent{ActorID: a.ID, Target: target, SpeedMul: speedMul}}
}

// keeper chases inside the save box and guards the line outside it
func (s *AISystem) keeper(a *entity.Actor, w World) Decision {
	ball := w.Ball().Position
	goal := s.field.GoalCenter(a.Team)
	sign := a.Team.AttackSign()
	k := s.cfg.Keeper

	depth := (ball.Z - goal.Z) * sign
	if math.Abs(ball.X) <= k.SaveBoxWidth/2 && depth <= k.SaveBoxDepth {
		dec := s.seek(a, ball, s.cfg.KeeperSpeed)
		if kinematics.WithinXZ(a.Position, ball, k.KickRange) {
			dir, ok := ball.Sub(goal).NormalizeXZ()
			if !ok {
				dir = kinematics.Vec3{Z: sign}
			}
			dec.Kick = &KickIntent{ActorID: a.ID, Mode: entity.KickClear, Direction: dir}
		}
		return dec
	}

	return s.seek(a, s.guardPoint(goal, ball, sign), s.cfg.KeeperSpeed)
}

// guardPoint places the keeper on the goal-to-ball line, near the line and
// inside the posts
func (s *AISystem) guardPoint(goal, ball kinematics.Vec3, sign float64) kinematics.Vec3 {
	k := s.cfg.Keeper
	dir, ok := ball.Sub(goal).NormalizeXZ()
	if !ok {
		dir = kinematics.Vec3{Z: sign}
	}

	p := goal.Add(dir.Scale(k.GuardDistance))
	hgw := s.field.HalfGoalWidth()
	p.X = kinematics.Clamp(p.X, -hgw, hgw)
	p.Z = goal.Z + sign*kinematics.Clamp((p.Z-goal.Z)*sign, 0, k.GuardMaxDepth)
	return p
}

// presser chases the ball and decides with it once in possession range
func (s *AISystem) presser(a *entity.Actor, w World) Decision {
	ball := w.Ball().Position
	if !kinematics.WithinXZ(a.Position, ball, s.cfg.PossessionRange) {
		return s.seek(a, ball, s.cfg.PressSpeed)
	}
	return s.possess(a, w)
}

// possess chooses between shooting, dribbling and passing
func (s *AISystem) possess(a *entity.Actor, w World) Decision {
	ball := w.Ball().Position
	goal := s.field.GoalCenter(a.Team.Opponent())

	if kinematics.WithinXZ(a.Position, goal, s.cfg.ShootDistance(a.Role)) {
		dec := s.seek(a, ball, s.cfg.PressSpeed)
		dec.Kick = &KickIntent{ActorID: a.ID, Mode: entity.KickShoot, Direction: goal.Sub(ball)}
		return dec
	}

	opponents := w.Roster(a.Team.Opponent())
	if !s.UnderPressure(a, opponents) {
		return s.dribble(a, ball, goal)
	}

	target, ok := s.BestPass(a, w.Roster(a.Team), opponents)
	if !ok {
		return s.dribble(a, ball, goal)
	}

	dec := s.seek(a, ball, s.cfg.PressSpeed)
	dec.Kick = &KickIntent{
		ActorID:   a.ID,
		Mode:      entity.KickPass,
		Direction: target.Position.Sub(ball),
		Distance:  kinematics.DistanceXZ(ball, target.Position),
	}
	return dec
}

// dribble runs through the ball toward goal so the contact push carries it
func (s *AISystem) dribble(a *entity.Actor, ball, goal kinematics.Vec3) Decision {
	dir, ok := goal.Sub(ball).NormalizeXZ()
	if !ok {
		return s.seek(a, ball, s.cfg.PressSpeed)
	}
	return s.seek(a, ball.Add(dir.Scale(s.cfg.DribbleLead)), s.cfg.PressSpeed)
}

// UnderPressure reports whether an opponent within the pressure radius is
// ahead on the attacking axis, or enough of them are close to swarm
func (s *AISystem) UnderPressure(a *entity.Actor, opponents []*entity.Actor) bool {
	sign := a.Team.AttackSign()
	near := 0
	for _, o := range opponents {
		if !kinematics.WithinXZ(a.Position, o.Position, s.cfg.Pressure.Radius) {
			continue
		}
		near++
		if (o.Position.Z-a.Position.Z)*sign > 0 {
			return true
		}
	}
	return near >= s.cfg.Pressure.SwarmCount
}

// BestPass returns the highest scoring teammate, skipping the passer and
// goalkeepers. Earlier roster entries win ties.
func (s *AISystem) BestPass(a *entity.Actor, teammates, opponents []*entity.Actor) (*entity.Actor, bool) {
	var best *entity.Actor
	bestScore := math.Inf(-1)
	for _, t := range teammates {
		if t == a || t.IsGoalkeeper() {
			continue
		}
		score, ok := s.PassScore(a, t, opponents)
		if !ok || score <= bestScore {
			continue
		}
		best, bestScore = t, score
	}
	return best, best != nil
}

// PassScore rates a pass from a to candidate. It reports false when the
// candidate is outside the pass distance window.
func (s *AISystem) PassScore(a, candidate *entity.Actor, opponents []*entity.Actor) (float64, bool) {
	p := s.cfg.Pass
	d := kinematics.DistanceXZ(a.Position, candidate.Position)
	if d < p.MinDistance || d > p.MaxDistance {
		return 0, false
	}

	progress := (candidate.Position.Z - a.Position.Z) * a.Team.AttackSign()

	nearest := math.Inf(1)
	for _, o := range opponents {
		nearest = math.Min(nearest, kinematics.DistanceXZ(candidate.Position, o.Position))
	}

	score := progress*p.ProgressWeight -
		math.Abs(d-p.IdealDistance)*p.DistanceWeight +
		math.Min(nearest, p.OpennessCap)*p.OpennessWeight
	if nearest < p.MarkingRadius {
		score -= p.BlockedPenalty
	}
	return score, true
}

// cover holds a point between home and the ball, pulled less the farther
// the ball is from home
func (s *AISystem) cover(a *entity.Actor, w World) Decision {
	ball := w.Ball().Position
	c := s.cfg.Cover

	d := kinematics.DistanceXZ(a.Home, ball)
	weight := c.Blend * kinematics.Clamp(1-d/c.FalloffDistance, c.MinWeight, 1)
	target := a.Home.Add(ball.Sub(a.Home).Scale(weight))
	target.Y = a.Home.Y
	return s.seek(a, target, s.cfg.CoverSpeed)
}
