package cli

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shamikhz/UUID-Generator/pkg/cliconfig"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_FollowsConfig(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })

	cfg = cliconfig.NewDefault()
	cfg.LogLevel = "debug"
	assert.True(t, newLogger().Enabled(context.Background(), slog.LevelDebug))

	cfg.LogLevel = "warn"
	log := newLogger()
	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, log.Enabled(context.Background(), slog.LevelWarn))
}
