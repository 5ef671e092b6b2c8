package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type testLogger struct {
	entries []string
}

func (l *testLogger) Debug(_ map[string]any, msg string) { l.entries = append(l.entries, "DEBUG:"+msg) }
func (l *testLogger) Info(_ map[string]any, msg string)  { l.entries = append(l.entries, "INFO:"+msg) }
func (l *testLogger) Warn(_ map[string]any, msg string)  { l.entries = append(l.entries, "WARN:"+msg) }
func (l *testLogger) Error(_ map[string]any, msg string) { l.entries = append(l.entries, "ERROR:"+msg) }
func (l *testLogger) Fatal(_ map[string]any, msg string) {}
func (l *testLogger) With(map[string]any) Logger         { return l }

func TestSetLoggerAndGlobalLogging(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)
	tlog := &testLogger{}
	SetLogger(tlog)

	Info(nil, "info msg")
	Error(nil, "error msg")
	Debug(nil, "debug msg")
	Warn(nil, "warn msg")

	assert.Equal(t, []string{
		"INFO:info msg",
		"ERROR:error msg",
		"DEBUG:debug msg",
		"WARN:warn msg",
	}, tlog.entries)
}

func TestConfigure_ValidLevels(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)

	for _, env := range []string{"dev", "prod"} {
		for _, level := range []string{"debug", "info", "WARN", "error"} {
			require.NoError(t, Configure(env, level), "%s/%s", env, level)
			_, ok := GetLogger().(*zapLogger)
			assert.True(t, ok)
		}
	}
	Sync()
}

func TestConfigure_InvalidLevel(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)

	err := Configure("dev", "notalevel")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestZapLogger_FieldsAndWith(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core))

	l.With(map[string]any{"server": "8.8.8.8:53"}).Debug(map[string]any{"id": 42}, "sent query")
	l.Warn(nil, "no fields")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "sent query", entries[0].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "8.8.8.8:53", ctx["server"])
	assert.EqualValues(t, 42, ctx["id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Empty(t, entries[1].ContextMap())
}

func TestNoopLogger_TestAllLevels(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)
	n := NewNoopLogger()
	SetLogger(n)

	Debug(nil, "debug message")
	Info(nil, "info message")
	Warn(nil, "warn message")
	Error(nil, "error message")
	Fatal(nil, "fatal message") // discarded, must not exit
	assert.Same(t, n, n.With(map[string]any{"k": "v"}))
}
