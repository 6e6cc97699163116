package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobia-app/cobia-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{"debug_level", "debug"},
		{"info_level", "info"},
		{"warn_level", "warn"},
		{"error_level", "error"},
		{"mixed_case_level", "INFO"},
		{"invalid_level_falls_back_to_info", "nonsense"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.logLevel})

			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.Equal(t, logger, slog.Default())
		})
	}
}

func TestLoggerContextHelpers(t *testing.T) {
	base := slog.Default().With(slog.String("trace_id", "abc"))

	ctx := WithLogger(context.Background(), base)

	got, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, base, got)

	assert.Equal(t, base, FromContextOrDefault(ctx, nil))
}

func TestFromContextOrDefaultFallbacks(t *testing.T) {
	fallback := slog.Default().With(slog.String("component", "test"))

	assert.Equal(t, fallback, FromContextOrDefault(context.Background(), fallback))
	assert.Equal(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
}
