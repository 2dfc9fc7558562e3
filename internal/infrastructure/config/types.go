package config

import (
	"encoding/json"
	"fmt"

	"github.com/younwookim/pitch/internal/domain/entity"
	"github.com/younwookim/pitch/internal/domain/kinematics"
)

// MatchConfig is the root config for match.json
type MatchConfig struct {
	Display  DisplayConfig  `json:"display"`
	Field    FieldConfig    `json:"field"`
	Ball     BallConfig     `json:"ball"`
	Movement MovementConfig `json:"movement"`
	AI       AIConfig       `json:"ai"`
	Kick     KickConfig     `json:"kick"`
}

type DisplayConfig struct {
	ScreenWidth   int     `json:"screenWidth"`
	ScreenHeight  int     `json:"screenHeight"`
	Scale         int     `json:"scale"`
	Framerate     int     `json:"framerate"`
	PixelsPerUnit float64 `json:"pixelsPerUnit"`
	GoalFreeze    float64 `json:"goalFreeze"` // seconds the scene holds after a goal
}

// FieldConfig describes the pitch. Width runs along X (touchlines),
// Depth along Z (goal lines at ±Depth/2).
type FieldConfig struct {
	Width     float64 `json:"width"`
	Depth     float64 `json:"depth"`
	GoalWidth float64 `json:"goalWidth"`
}

// HalfWidth returns the side boundary half-extent
func (f FieldConfig) HalfWidth() float64 { return f.Width / 2 }

// HalfDepth returns the end boundary half-extent
func (f FieldConfig) HalfDepth() float64 { return f.Depth / 2 }

// HalfGoalWidth returns half of the goal mouth
func (f FieldConfig) HalfGoalWidth() float64 { return f.GoalWidth / 2 }

// GoalCenter returns the centre of the goal the given team defends
func (f FieldConfig) GoalCenter(defending entity.Team) kinematics.Vec3 {
	return kinematics.Vec3{Z: -defending.AttackSign() * f.HalfDepth()}
}

type BallConfig struct {
	Gravity         float64 `json:"gravity"`
	GroundHeight    float64 `json:"groundHeight"`
	GroundTolerance float64 `json:"groundTolerance"` // height band above GroundHeight that still counts as rolling
	Restitution     float64 `json:"restitution"`
	StopBounceSpeed float64 `json:"stopBounceSpeed"`
	GroundFriction  float64 `json:"groundFriction"`
	WallDamping     float64 `json:"wallDamping"`
	KickoffHeight   float64 `json:"kickoffHeight"`

	// Actor contact volume (planar radius and height above ground)
	ContactRadius float64 `json:"contactRadius"`
	ContactHeight float64 `json:"contactHeight"`
	PushImpulse   float64 `json:"pushImpulse"`
	PushNudge     float64 `json:"pushNudge"`
}

// KickoffPoint returns the reset position after a goal
func (b BallConfig) KickoffPoint() kinematics.Vec3 {
	return kinematics.Vec3{Y: b.KickoffHeight}
}

// Entries is a keyed config section. Decoding onto an existing entry only
// overwrites the fields present in the JSON; new keys start from zero.
type Entries[V any] map[string]V

func (e *Entries[V]) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if *e == nil {
		*e = make(Entries[V], len(raw))
	}
	for key, msg := range raw {
		v := (*e)[key]
		if err := json.Unmarshal(msg, &v); err != nil {
			return fmt.Errorf("entry %q: %w", key, err)
		}
		(*e)[key] = v
	}
	return nil
}

type MovementConfig struct {
	GroundOffset  float64                     `json:"groundOffset"`
	MinSeparation float64                     `json:"minSeparation"`
	ArriveEpsilon float64                     `json:"arriveEpsilon"`
	Acceleration  float64                     `json:"acceleration"`
	Friction      float64                     `json:"friction"`
	Roles         Entries[RoleMovementConfig] `json:"roles"`
}

type RoleMovementConfig struct {
	MaxSpeed float64 `json:"maxSpeed"`
}

// MaxSpeed returns the base speed for a role, falling back to the midfielder value
func (m MovementConfig) MaxSpeed(role entity.Role) float64 {
	if rc, ok := m.Roles[role.String()]; ok {
		return rc.MaxSpeed
	}
	return m.Roles[entity.RoleMidfielder.String()].MaxSpeed
}

type AIConfig struct {
	// Speed multipliers applied on top of the role speed
	PressSpeed  float64 `json:"pressSpeed"`
	CoverSpeed  float64 `json:"coverSpeed"`
	KeeperSpeed float64 `json:"keeperSpeed"`

	PossessionRange float64 `json:"possessionRange"`
	DribbleLead     float64 `json:"dribbleLead"` // how far past the ball a dribbler aims

	Cover      CoverConfig        `json:"cover"`
	Keeper     KeeperConfig       `json:"keeper"`
	Pressure   PressureConfig     `json:"pressure"`
	ShootRange map[string]float64 `json:"shootRange"`
	Pass       PassConfig         `json:"pass"`
}

// ShootDistance returns the goal distance under which a role shoots
func (a AIConfig) ShootDistance(role entity.Role) float64 {
	return a.ShootRange[role.String()]
}

type CoverConfig struct {
	Blend           float64 `json:"blend"`
	FalloffDistance float64 `json:"falloffDistance"`
	MinWeight       float64 `json:"minWeight"` // fraction of Blend kept however far the ball is
}

type KeeperConfig struct {
	SaveBoxWidth  float64 `json:"saveBoxWidth"`
	SaveBoxDepth  float64 `json:"saveBoxDepth"`
	KickRange     float64 `json:"kickRange"`
	GuardDistance float64 `json:"guardDistance"`
	GuardMaxDepth float64 `json:"guardMaxDepth"`
}

type PressureConfig struct {
	Radius     float64 `json:"radius"`
	SwarmCount int     `json:"swarmCount"`
}

type PassConfig struct {
	MinDistance    float64 `json:"minDistance"`
	MaxDistance    float64 `json:"maxDistance"`
	IdealDistance  float64 `json:"idealDistance"`
	ProgressWeight float64 `json:"progressWeight"`
	DistanceWeight float64 `json:"distanceWeight"`
	OpennessWeight float64 `json:"opennessWeight"`
	OpennessCap    float64 `json:"opennessCap"`
	MarkingRadius  float64 `json:"markingRadius"`
	BlockedPenalty float64 `json:"blockedPenalty"`
}

type KickConfig struct {
	Range      float64                 `json:"range"`
	SpeedLimit float64                 `json:"speedLimit"`
	Modes      Entries[KickModeConfig] `json:"modes"`
}

// Mode returns the tuning for a kick mode
func (k KickConfig) Mode(m entity.KickMode) KickModeConfig {
	return k.Modes[m.String()]
}

// KickModeConfig tunes one kick mode. When PowerPerUnit is non-zero the power
// scales with target distance and is clamped to [MinPower, MaxPower].
type KickModeConfig struct {
	Power        float64 `json:"power"`
	PowerPerUnit float64 `json:"powerPerUnit,omitempty"`
	MinPower     float64 `json:"minPower,omitempty"`
	MaxPower     float64 `json:"maxPower,omitempty"`
	LiftMin      float64 `json:"liftMin"`
	LiftMax      float64 `json:"liftMax"`
	Noise        float64 `json:"noise"` // max angular deviation in radians
}

// PowerFor returns the kick power for a target at distance d
func (k KickModeConfig) PowerFor(d float64) float64 {
	if k.PowerPerUnit == 0 {
		return k.Power
	}
	return kinematics.Clamp(d*k.PowerPerUnit, k.MinPower, k.MaxPower)
}
