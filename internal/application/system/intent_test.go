package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/pitch/internal/domain/entity"
	"github.com/younwookim/pitch/internal/domain/kinematics"
)

func TestMoveIntent(t *testing.T) {
	intent := MoveIntent{
		ActorID:   entity.ActorID(1),
		Direction: kinematics.Vec3{X: 1},
		SpeedMul:  1,
	}

	var i Intent = intent
	i.isIntent()

	assert.Equal(t, entity.ActorID(1), intent.ActorID)
	assert.Equal(t, 1.0, intent.Direction.X)
}

func TestSeekIntent(t *testing.T) {
	intent := SeekIntent{
		ActorID:  entity.ActorID(2),
		Target:   kinematics.Vec3{X: 3, Z: -4},
		SpeedMul: 0.8,
	}

	var i Intent = intent
	i.isIntent()

	assert.Equal(t, entity.ActorID(2), intent.ActorID)
	assert.Equal(t, 0.8, intent.SpeedMul)
}

func TestKickIntent(t *testing.T) {
	intent := KickIntent{
		ActorID:   entity.ActorID(3),
		Mode:      entity.KickPass,
		Direction: kinematics.Vec3{Z: 1},
		Distance:  15,
	}

	var i Intent = intent
	i.isIntent()

	assert.Equal(t, entity.KickPass, intent.Mode)
	assert.Equal(t, 15.0, intent.Distance)
}

func TestDecision_ZeroValue(t *testing.T) {
	var d Decision

	assert.Nil(t, d.Move)
	assert.Nil(t, d.Kick)
}
