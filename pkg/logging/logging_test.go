package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		"warning": zapcore.WarnLevel,
		" error ": zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}

	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestLoggerKeyValues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core)).Named("mcp").With("tool", "people_search")

	log.Debug("tool called", "call_id", "abc")
	log.Warn("tool failed", "err", "boom")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "mcp", entries[0].LoggerName)
		assert.Equal(t, "people_search", entries[0].ContextMap()["tool"])
		assert.Equal(t, "abc", entries[0].ContextMap()["call_id"])
		assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	}
}
