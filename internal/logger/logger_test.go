package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize_ValidLevels(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	levels := []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}

	for _, lvl := range levels {
		t.Run(lvl, func(t *testing.T) {
			err := Initialize(lvl)
			assert.NoError(t, err, "expected no error for level %s", lvl)
			assert.NotNil(t, Log)
			assert.IsType(t, &zap.SugaredLogger{}, Log)

			assert.NotPanics(t, func() {
				Log.Infow("test log", "level", lvl)
			})
		})
	}
}

func TestInitialize_WithFields(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	err := Initialize("info", "service", "gw-exchange-rate", "version", "v0.0.1")
	assert.NoError(t, err)
	assert.NotPanics(t, func() {
		Log.Infow("with fields")
		Sync()
	})
}

func TestInitialize_InvalidLevel(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	err := Initialize("not-a-level")
	assert.Error(t, err)
	assert.Equal(t, originalLog, Log, "failed Initialize must keep the previous logger")
}

func TestLog_NopBeforeInitialize(t *testing.T) {
	assert.NotNil(t, Log)
	assert.IsType(t, &zap.SugaredLogger{}, Log)

	assert.NotPanics(t, func() {
		Log.Infow("nop logger test")
	})
}

func TestFromContext(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	core, logs := observer.New(zap.InfoLevel)
	Log = zap.New(core).Sugar()

	ctx := WithRequestID(context.Background(), "req-42")
	id, ok := RequestID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-42", id)

	FromContext(ctx).Infow("with id")
	FromContext(context.Background()).Infow("without id")

	detached, cancel := context.WithCancel(ctx)
	cancel()
	FromContext(context.WithoutCancel(detached)).Infow("detached")

	entries := logs.All()
	assert.Len(t, entries, 3)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
	assert.Equal(t, "req-42", entries[2].ContextMap()["request_id"])
}

func TestRequestID_Missing(t *testing.T) {
	_, ok := RequestID(context.Background())
	assert.False(t, ok)

	_, ok = RequestID(WithRequestID(context.Background(), ""))
	assert.False(t, ok)
}
