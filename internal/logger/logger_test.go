package logger

import (
	"testing"

	"page-assist/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGet_BeforeInitialize(t *testing.T) {
	assert.NotNil(t, Get())
}

func TestInitialize(t *testing.T) {
	t.Cleanup(func() { _ = Initialize(config.LoggerConfig{}) })

	require.NoError(t, Initialize(config.LoggerConfig{Level: "debug", Env: "production"}))
	assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Initialize(config.LoggerConfig{Level: "warn"}))
	assert.False(t, Get().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Get().Core().Enabled(zapcore.WarnLevel))
}

func TestInitialize_BadLevel(t *testing.T) {
	err := Initialize(config.LoggerConfig{Level: "chatty"})
	assert.Error(t, err)
}
