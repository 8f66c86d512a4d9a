package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLevels(t *testing.T) {
	testCases := []struct {
		level        string
		debugEnabled bool
		infoEnabled  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"error", false, false},
		{"chatty", false, true},
	}

	prev := slog.Default()
	defer slog.SetDefault(prev)

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := SetupWithWriter(&buf, tc.level)

			ctx := context.Background()
			assert.Equal(t, tc.debugEnabled, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tc.infoEnabled, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestSetupInstallsDefault(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	SetupWithWriter(&buf, "info")

	slog.Info("hello", "who", "tests")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "who=tests")
}
