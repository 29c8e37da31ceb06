package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// useObserver swaps the global logger for an in-memory one for the test.
func useObserver(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	prev := Logger
	Logger = zap.New(core).Sugar()
	t.Cleanup(func() { Logger = prev })
	return logs
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
	}{
		{name: "JSON output mode", jsonOutput: true},
		{name: "Console output mode", jsonOutput: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := Logger
			t.Cleanup(func() {
				Logger = prev
				JSONOutput = false
			})

			require.NoError(t, Initialize(tt.jsonOutput))
			assert.NotNil(t, Logger)
			assert.Equal(t, tt.jsonOutput, JSONOutput)
			assert.True(t, Logger.Desugar().Core().Enabled(zapcore.InfoLevel))
			assert.False(t, Logger.Desugar().Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestInitializeWithVerbosity(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	require.NoError(t, InitializeWithVerbosity(false, VerbosityDebug))
	assert.True(t, Logger.Desugar().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, InitializeWithVerbosity(false, VerbosityUser))
	assert.False(t, Logger.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Logger.Desugar().Core().Enabled(zapcore.WarnLevel))
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{VerbosityTrace, zapcore.DebugLevel},
		{9, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "User", LevelName(0))
	assert.Equal(t, "Debug (-vv)", LevelName(2))
	assert.Equal(t, "Trace (-vvv+)", LevelName(7))
	assert.Equal(t, "Unknown", LevelName(-3))
	assert.True(t, ShouldLogTrace(3))
	assert.False(t, ShouldLogTrace(2))
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}

func TestLoggingFunctions(t *testing.T) {
	logs := useObserver(t, zapcore.DebugLevel)

	Debugw("resolved node", FieldTypeName, "Create", FieldPath, "$.object")
	Infow("info")
	Warnw("warn")
	Errorw("error", FieldError, "boom")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "resolved node", entries[0].Message)
	assert.Equal(t, "Create", entries[0].ContextMap()[FieldTypeName])
	assert.Equal(t, "$.object", entries[0].ContextMap()[FieldPath])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestLoggingFunctions_NilLogger(t *testing.T) {
	prev := Logger
	Logger = nil
	t.Cleanup(func() { Logger = prev })

	assert.NotPanics(t, func() {
		Debugw("test", "key", "value")
		Infow("test", "key", "value")
		Warnw("test", "key", "value")
		Errorw("test", "key", "value")
		Cleanup()
	})
}

func TestComponentAndChildLogger(t *testing.T) {
	logs := useObserver(t, zapcore.InfoLevel)

	reader := ComponentLogger("conversion.reader")
	ChildLogger(reader, FieldFile, "note.jsonld").Infow("read document")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "conversion.reader", entries[0].LoggerName)
	assert.Equal(t, "note.jsonld", entries[0].ContextMap()[FieldFile])
}
