package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sangkips/salesreport-charts/pkg/logger"
)

func TestInit(t *testing.T) {
	previous := logger.Log
	t.Cleanup(func() { logger.Log = previous })

	require.NoError(t, logger.Init("production"))
	assert.False(t, logger.Log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Log.Core().Enabled(zapcore.InfoLevel))

	require.NoError(t, logger.Init("development"))
	assert.True(t, logger.Log.Core().Enabled(zapcore.DebugLevel))
}

func TestWith(t *testing.T) {
	previous := logger.Log
	t.Cleanup(func() { logger.Log = previous })

	logger.Log = zap.NewNop()
	assert.NotNil(t, logger.With(zap.String("component", "renderer")))
}
