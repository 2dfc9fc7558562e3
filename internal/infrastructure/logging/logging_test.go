package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, "pitch", "info")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("goal", "team", "home", "score", "1-0")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "pitch")
	assert.Contains(t, out, "goal")
	assert.Contains(t, out, "team=home")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "pitch", "loud")
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Error("dropped", "k", 1)
	})
}
