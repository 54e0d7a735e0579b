package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"progviz/internal/domain"
	"progviz/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	log, err := logging.New("warn", false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	log, err = logging.New("warn", true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = logging.New("", false)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New("loud", false)
	require.Error(t, err)
}

func TestWarnings(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logging.Warnings(zap.New(core), []domain.Warning{
		{Source: "categories/Legend", Message: "duplicate category"},
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "duplicate category", entry.Message)
	assert.Equal(t, "categories/Legend", entry.ContextMap()["source"])
}
