package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesAtLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	logger, err := New("warn", path)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", zap.String("state", "running"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
	assert.Contains(t, string(data), "running")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New("loud")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Info("nothing") })
}
