package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pitch/internal/domain/entity"
)

func TestLoader_LoadMatch(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadMatch()
	require.NoError(t, err)

	assert.Equal(t, 840, cfg.Display.ScreenWidth)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 100.0, cfg.Field.Width)
	assert.Equal(t, 64.0, cfg.Field.Depth)
	assert.Equal(t, 25.0, cfg.Ball.Gravity)
	assert.Equal(t, 0.98, cfg.Ball.GroundFriction)
	assert.Equal(t, 9.0, cfg.Movement.MaxSpeed(entity.RoleAttacker))
	assert.Equal(t, 22.0, cfg.AI.ShootDistance(entity.RoleAttacker))
	assert.Equal(t, 25.0, cfg.Kick.Mode(entity.KickShoot).Power)
}

func TestLoader_LoadMatch_PartialOverride(t *testing.T) {
	fsys := fstest.MapFS{
		"match.json": {Data: []byte(`{"ball":{"gravity":9.8},"movement":{"roles":{"att":{"maxSpeed":12}}}}`)},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadMatch()
	require.NoError(t, err)

	assert.Equal(t, 9.8, cfg.Ball.Gravity)
	assert.Equal(t, 0.7, cfg.Ball.Restitution, "untouched keys keep defaults")
	assert.Equal(t, 12.0, cfg.Movement.MaxSpeed(entity.RoleAttacker))
	assert.Equal(t, 7.0, cfg.Movement.MaxSpeed(entity.RoleDefender), "map entries merge")
}

func TestLoader_LoadMatch_PartialEntry(t *testing.T) {
	fsys := fstest.MapFS{
		"match.json": {Data: []byte(`{"movement":{"roles":{"att":{},"wing":{"maxSpeed":10}}},"kick":{"modes":{"shoot":{"power":30}}}}`)},
	}

	cfg, err := NewFSLoader(fsys, "mem").LoadMatch()
	require.NoError(t, err)

	assert.Equal(t, 9.0, cfg.Movement.MaxSpeed(entity.RoleAttacker), "empty entry keeps its defaults")
	assert.Equal(t, 10.0, cfg.Movement.Roles["wing"].MaxSpeed)

	shoot := cfg.Kick.Mode(entity.KickShoot)
	assert.Equal(t, 30.0, shoot.Power)
	assert.Equal(t, 2.0, shoot.LiftMin)
	assert.Equal(t, 6.0, shoot.LiftMax)
	assert.Equal(t, 0.08, shoot.Noise)
	assert.Equal(t, DefaultMatchConfig().Kick.Mode(entity.KickPass), cfg.Kick.Mode(entity.KickPass))
}

func TestLoader_LoadMatch_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing", fstest.MapFS{}},
		{"malformed", fstest.MapFS{"match.json": {Data: []byte(`{"ball":`)}}},
		{"bad entry", fstest.MapFS{"match.json": {Data: []byte(`{"kick":{"modes":{"shoot":{"power":"hard"}}}}`)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.fsys, "mem").LoadMatch()
			assert.Error(t, err)
		})
	}
}

func TestLoader_LoadFormation(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadFormation("433")
	require.NoError(t, err)

	assert.Equal(t, "433", cfg.Name)
	require.Len(t, cfg.Slots, 11)
	assert.Equal(t, "gk", cfg.Slots[0].Role)
	assert.Equal(t, -30.0, cfg.Slots[0].Z)
	assert.True(t, cfg.Slots[9].Controlled)
	assert.Equal(t, 9, cfg.Slots[9].Number)
	assert.Equal(t, DefaultFormation(), cfg)
}

func TestLoader_LoadFormation_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "name: x\nslots: []\n"},
		{"unknown role", "slots:\n  - {x: 0, z: 0, role: striker, number: 9}\n"},
		{"keepers only", "slots:\n  - {x: 0, z: -30, role: gk, number: 1}\n"},
		{"two controlled", "slots:\n  - {role: att, number: 9, controlled: true}\n  - {role: att, number: 10, controlled: true}\n"},
		{"malformed", "slots: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"formations/bad.yaml": {Data: []byte(tt.yaml)}}
			_, err := NewFSLoader(fsys, "mem").LoadFormation("bad")
			assert.Error(t, err)
		})
	}
}

func TestLoader_LoadFormation_DefaultsName(t *testing.T) {
	fsys := fstest.MapFS{
		"formations/solo.yaml": {Data: []byte("slots:\n  - {x: 0, z: 0, role: mid, number: 8}\n")},
	}

	cfg, err := NewFSLoader(fsys, "mem").LoadFormation("solo")
	require.NoError(t, err)
	assert.Equal(t, "solo", cfg.Name)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadAll("442")
	require.NoError(t, err)

	assert.NotNil(t, cfg.Match)
	require.NotNil(t, cfg.Formation)
	assert.Equal(t, "442", cfg.Formation.Name)
}

func TestKickModeConfig_PowerFor(t *testing.T) {
	pass := DefaultMatchConfig().Kick.Mode(entity.KickPass)
	shoot := DefaultMatchConfig().Kick.Mode(entity.KickShoot)

	assert.Equal(t, 8.0, pass.PowerFor(2))
	assert.InDelta(t, 18.0, pass.PowerFor(15), 1e-9)
	assert.Equal(t, 24.0, pass.PowerFor(40))
	assert.Equal(t, 25.0, shoot.PowerFor(3))
}

func TestFieldConfig_GoalCenter(t *testing.T) {
	f := DefaultMatchConfig().Field

	assert.Equal(t, -32.0, f.GoalCenter(entity.TeamHome).Z)
	assert.Equal(t, 32.0, f.GoalCenter(entity.TeamAway).Z)
}
