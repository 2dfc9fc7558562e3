package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/pitch/internal/domain/entity"
)

// ErrEmptyFormation is returned for a formation without slots
var ErrEmptyFormation = errors.New("formation has no slots")

// FormationConfig is a formation table loaded from formations/<name>.yaml.
// Slot coordinates are for the home side; the away side is mirrored across
// the halfway line.
type FormationConfig struct {
	Name  string       `yaml:"name"`
	Slots []SlotConfig `yaml:"slots"`
}

// SlotConfig places one roster member
type SlotConfig struct {
	X          float64 `yaml:"x"` // lateral offset
	Z          float64 `yaml:"z"` // depth offset, negative is the home half
	Role       string  `yaml:"role"`
	Number     int     `yaml:"number"`
	Name       string  `yaml:"name,omitempty"`
	Controlled bool    `yaml:"controlled,omitempty"`
}

// Validate checks the preconditions the match coordinator relies on
func (f *FormationConfig) Validate() error {
	if len(f.Slots) == 0 {
		return ErrEmptyFormation
	}

	outfield := 0
	controlled := 0
	for i, s := range f.Slots {
		role, err := entity.ParseRole(s.Role)
		if err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
		if role != entity.RoleGoalkeeper {
			outfield++
		}
		if s.Controlled {
			controlled++
		}
	}

	if outfield == 0 {
		return fmt.Errorf("formation %q has no outfield players", f.Name)
	}
	if controlled > 1 {
		return fmt.Errorf("formation %q marks %d controlled slots, want at most 1", f.Name, controlled)
	}
	return nil
}

// DefaultFormation returns the spread 4-3-3 used when no table is given
func DefaultFormation() *FormationConfig {
	return &FormationConfig{
		Name: "433",
		Slots: []SlotConfig{
			{X: 0, Z: -30, Role: "gk", Number: 1},
			{X: -22, Z: -22, Role: "def", Number: 3},
			{X: -8, Z: -22, Role: "def", Number: 4},
			{X: 8, Z: -22, Role: "def", Number: 5},
			{X: 22, Z: -22, Role: "def", Number: 2},
			{X: -15, Z: -10, Role: "mid", Number: 8},
			{X: 0, Z: -8, Role: "mid", Number: 10},
			{X: 15, Z: -10, Role: "mid", Number: 6},
			{X: -25, Z: 5, Role: "att", Number: 11},
			{X: 0, Z: 10, Role: "att", Number: 9, Controlled: true},
			{X: 25, Z: 5, Role: "att", Number: 7},
		},
	}
}
