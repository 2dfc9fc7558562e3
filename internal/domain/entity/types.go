package entity

import "fmt"

// Team identifies one of the two sides.
// TeamHome defends -Z and attacks +Z; TeamAway is its mirror.
type Team int

const (
	TeamHome Team = iota
	TeamAway
)

// TeamCount is the number of sides in a match
const TeamCount = 2

// String returns the string representation of the team
func (t Team) String() string {
	switch t {
	case TeamHome:
		return "home"
	case TeamAway:
		return "away"
	default:
		return "unknown"
	}
}

// Opponent returns the other side
func (t Team) Opponent() Team {
	if t == TeamHome {
		return TeamAway
	}
	return TeamHome
}

// AttackSign is +1 when the team attacks toward +Z and -1 otherwise
func (t Team) AttackSign() float64 {
	if t == TeamHome {
		return 1
	}
	return -1
}

// Role is the tactical position an actor plays
type Role int

const (
	RoleGoalkeeper Role = iota
	RoleDefender
	RoleMidfielder
	RoleAttacker
)

// String returns the short role name used in formation tables
func (r Role) String() string {
	switch r {
	case RoleGoalkeeper:
		return "gk"
	case RoleDefender:
		return "def"
	case RoleMidfielder:
		return "mid"
	case RoleAttacker:
		return "att"
	default:
		return "unknown"
	}
}

// ParseRole accepts both the short ("gk") and the long ("goalkeeper") spelling
func ParseRole(s string) (Role, error) {
	switch s {
	case "gk", "goalkeeper":
		return RoleGoalkeeper, nil
	case "def", "defender":
		return RoleDefender, nil
	case "mid", "midfielder":
		return RoleMidfielder, nil
	case "att", "attacker":
		return RoleAttacker, nil
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

// KickMode selects the power, lift and noise of a kick
type KickMode int

const (
	KickShoot KickMode = iota
	KickPass
	KickClear
	KickWeak
)

// String returns the string representation of the kick mode
func (m KickMode) String() string {
	switch m {
	case KickShoot:
		return "shoot"
	case KickPass:
		return "pass"
	case KickClear:
		return "clear"
	case KickWeak:
		return "weak"
	default:
		return "unknown"
	}
}
