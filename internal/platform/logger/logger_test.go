package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulse-social/pulse-api/internal/config"
	"github.com/pulse-social/pulse-api/internal/platform/logger"
)

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		debugEnabled bool
		infoEnabled  bool
		errorEnabled bool
	}{
		{name: "debug level", logLevel: "debug", debugEnabled: true, infoEnabled: true, errorEnabled: true},
		{name: "info level", logLevel: "info", debugEnabled: false, infoEnabled: true, errorEnabled: true},
		{name: "warn level", logLevel: "warn", debugEnabled: false, infoEnabled: false, errorEnabled: true},
		{name: "error level", logLevel: "error", debugEnabled: false, infoEnabled: false, errorEnabled: true},
		{name: "mixed case", logLevel: "DEBUG", debugEnabled: true, infoEnabled: true, errorEnabled: true},
		{name: "unknown level falls back to info", logLevel: "verbose", debugEnabled: false, infoEnabled: true, errorEnabled: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, err := logger.Setup(config.ServerConfig{Port: 8080, LogLevel: tc.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.Equal(t, tc.debugEnabled, log.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tc.infoEnabled, log.Enabled(ctx, slog.LevelInfo))
			assert.Equal(t, tc.errorEnabled, log.Enabled(ctx, slog.LevelError))
		})
	}
}

func TestSetupSetsDefaultLogger(t *testing.T) {
	oldDefault := slog.Default()
	defer slog.SetDefault(oldDefault)

	log, err := logger.Setup(config.ServerConfig{Port: 8080, LogLevel: "warn"})
	require.NoError(t, err)

	assert.Same(t, log, slog.Default(), "Setup should install the logger as the slog default")
}

func TestWithLoggerAndFromContext(t *testing.T) {
	var buf bytes.Buffer
	scoped := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := context.Background()
	assert.Same(t, slog.Default(), logger.FromContext(ctx),
		"FromContext should fall back to the default logger")

	ctx = logger.WithLogger(ctx, scoped)
	assert.Same(t, scoped, logger.FromContext(ctx),
		"FromContext should return the logger stored in the context")
}

func TestFromContextOrDefault(t *testing.T) {
	var buf bytes.Buffer
	scoped := slog.New(slog.NewJSONHandler(&buf, nil))
	fallback := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := context.Background()

	assert.Same(t, fallback, logger.FromContextOrDefault(ctx, fallback),
		"should use the provided default when the context carries no logger")
	assert.Same(t, slog.Default(), logger.FromContextOrDefault(ctx, nil),
		"should use the slog default when neither context nor default is set")

	ctx = logger.WithLogger(ctx, scoped)
	assert.Same(t, scoped, logger.FromContextOrDefault(ctx, fallback),
		"the context logger wins over the provided default")
}
