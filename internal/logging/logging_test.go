package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, flush, err := New("info", path)
	require.NoError(t, err)

	logger.Info("processed %d row(s)", 3)
	logger.Debug("suppressed at info level")
	flush()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "processed 3 row(s)")
	assert.NotContains(t, string(data), "suppressed")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, _, err := New("loud", "")
	assert.Error(t, err)
}

func TestNopDiscardsEverything(t *testing.T) {
	logger := Nop()
	logger.Debug("d")
	logger.Info("i %d", 1)
	logger.Warn("w")
	logger.Error("e")
}
