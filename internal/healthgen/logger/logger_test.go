package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "level %q", tt.in)
	}
}

func TestInitLogger_Levels(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "warn"}))
	l := L()
	require.NotNil(t, l)
	assert.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Desugar().Core().Enabled(zapcore.WarnLevel))

	require.NoError(t, InitLogger(LogConfig{Level: "debug", Development: true}))
	assert.True(t, L().Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestL_LazyInit(t *testing.T) {
	logger = nil
	l := L()
	require.NotNil(t, l)
	assert.True(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
}

func TestSetLogger(t *testing.T) {
	nop := zap.NewNop().Sugar()
	SetLogger(nop)
	assert.Same(t, nop, L())
	Sync()
}
