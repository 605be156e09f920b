package log

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.With(String("pod", "mine-0")).Info("boost fired",
		Int("checkpoint", 3),
		Float64("distance", 4200.5),
		Bool("best", true),
		Error(errors.New("boom")),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "boost fired", entries[0].Message)
	assert.Equal(t, "mine-0", ctx["pod"])
	assert.EqualValues(t, 3, ctx["checkpoint"])
	assert.Equal(t, 4200.5, ctx["distance"])
	assert.Equal(t, true, ctx["best"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestLoggerLevelGate(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))
	l.SetLevel(LevelWarn)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")

	assert.Equal(t, LevelWarn, l.GetLevel())
	assert.Equal(t, 1, logs.Len())
}

func TestWithContextAddsMatch(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	ctx := ContextWithMatch(context.Background(), "m-1")
	l.WithContext(ctx).Info("turn")
	l.WithContext(context.Background()).Info("turn")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "m-1", entries[0].ContextMap()["match"])
	assert.NotContains(t, entries[1].ContextMap(), "match")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
	assert.Equal(t, "error", LevelError.String())
}
