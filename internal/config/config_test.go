package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/relq/internal/config"
	"github.com/leengari/relq/internal/fixture"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.SeqURL)
	assert.Equal(t, fixture.Options{Source: fixture.SourceEmbedded}, cfg.FixtureOptions())
	assert.Equal(t, slog.LevelInfo, cfg.LoggingOptions().Level)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "relq.yaml", `
log_level: debug
as_of: "2020-01-01"
fixture:
  source: sqlite
  dsn: school.db
`)

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.LoggingOptions().Level)
	assert.Equal(t, fixture.SourceSQLite, cfg.FixtureOptions().Source)
	assert.Equal(t, "school.db", cfg.FixtureOptions().DSN)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), cfg.AsOfDate(time.Now()))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "relq.yaml", "log_level: debug\n")
	t.Setenv("RELQ_LOG_LEVEL", "warn")
	t.Setenv("RELQ_FIXTURE_SOURCE", "dir")
	t.Setenv("RELQ_FIXTURE_DIR", "/tmp/school")

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, fixture.SourceDir, cfg.FixtureOptions().Source)
	assert.Equal(t, "/tmp/school", cfg.FixtureOptions().Dir)
}

func TestLoad_SQLiteDSNAlias(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RELQ_FIXTURE_SOURCE", "sqlite")
	t.Setenv("RELQ_SQLITE_DSN", "file:school.db")

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "file:school.db", cfg.Fixture.DSN)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := config.Config{LogLevel: "info", Fixture: config.FixtureConfig{Source: "embedded"}}

	tests := []struct {
		name   string
		modify func(c *config.Config)
	}{
		{"bad level", func(c *config.Config) { c.LogLevel = "loud" }},
		{"bad source", func(c *config.Config) { c.Fixture.Source = "mongo" }},
		{"dir without path", func(c *config.Config) { c.Fixture.Source = "dir" }},
		{"sqlite without dsn", func(c *config.Config) { c.Fixture.Source = "sqlite" }},
		{"bad as_of", func(c *config.Config) { c.AsOf = "01/01/2020" }},
	}

	require.NoError(t, valid.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.modify(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestAsOfDate_DefaultsToToday(t *testing.T) {
	cfg := config.Config{}
	now := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), cfg.AsOfDate(now))
}
