package config

import (
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLogLevel("DEBUG"))
	assert.Equal(t, log.DebugLevel, ParseLogLevel("debug"))
	assert.Equal(t, log.WarnLevel, ParseLogLevel("WARN"))
	assert.Equal(t, log.ErrorLevel, ParseLogLevel("ERROR"))
	assert.Equal(t, log.InfoLevel, ParseLogLevel("INFO"))
	assert.Equal(t, log.InfoLevel, ParseLogLevel("verbose"))
}

func TestConfigureLogging_WithFile(t *testing.T) {
	defer log.StandardLogger().ReplaceHooks(make(log.LevelHooks))

	cfg := &Config{
		LogLevel:      "DEBUG",
		LogFilePath:   filepath.Join(t.TempDir(), "logs", "geofence.log"),
		LogMaxAgeDays: 7,
	}
	require.NoError(t, ConfigureLogging(cfg))
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.NotEmpty(t, log.StandardLogger().Hooks[log.InfoLevel])
}
