// Package config loads relq settings from defaults, an optional config file
// and RELQ_ environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/leengari/relq/internal/domain/data"
	"github.com/leengari/relq/internal/fixture"
	"github.com/leengari/relq/internal/logging"
)

// EnvPrefix prefixes every environment override (RELQ_LOG_LEVEL, ...)
const EnvPrefix = "RELQ"

// Config is the resolved runtime configuration
type Config struct {
	LogLevel string        `mapstructure:"log_level"`
	SeqURL   string        `mapstructure:"seq_url"`
	AsOf     string        `mapstructure:"as_of"` // reference date for ages, YYYY-MM-DD; empty means today
	Fixture  FixtureConfig `mapstructure:"fixture"`
}

// FixtureConfig selects the dataset the exercises run against
type FixtureConfig struct {
	Source string `mapstructure:"source"`
	Dir    string `mapstructure:"dir"`
	DSN    string `mapstructure:"dsn"`
}

// New returns a viper instance with defaults and environment bindings set,
// ready for flag bindings and Load
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("seq_url", "")
	v.SetDefault("as_of", "")
	v.SetDefault("fixture.source", string(fixture.SourceEmbedded))
	v.SetDefault("fixture.dir", "")
	v.SetDefault("fixture.dsn", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("fixture.dsn", EnvPrefix+"_FIXTURE_DSN", EnvPrefix+"_SQLITE_DSN")

	return v
}

// Load reads the config file at path into v and unmarshals the result.
// With an empty path, relq.{yaml,json,toml} is looked up in the working
// directory and silently skipped when absent.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("relq")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the source kind, its required settings, the log level
// and the as-of date
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	src := fixture.Source(c.Fixture.Source)
	if !src.Valid() {
		return fmt.Errorf("config: unknown fixture source %q", c.Fixture.Source)
	}
	if src == fixture.SourceDir && c.Fixture.Dir == "" {
		return fmt.Errorf("config: fixture source %s requires fixture.dir", src)
	}
	if src == fixture.SourceSQLite && c.Fixture.DSN == "" {
		return fmt.Errorf("config: fixture source %s requires fixture.dsn", src)
	}

	if c.AsOf != "" {
		if _, err := data.ParseDate(c.AsOf); err != nil {
			return fmt.Errorf("config: as_of: %w", err)
		}
	}
	return nil
}

// AsOfDate returns the configured reference date, or today's date (UTC)
func (c *Config) AsOfDate(now time.Time) time.Time {
	if c.AsOf != "" {
		if t, err := data.ParseDate(c.AsOf); err == nil {
			return t
		}
	}
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FixtureOptions converts the fixture section for fixture.Open
func (c *Config) FixtureOptions() fixture.Options {
	return fixture.Options{
		Source: fixture.Source(c.Fixture.Source),
		Dir:    c.Fixture.Dir,
		DSN:    c.Fixture.DSN,
	}
}

// LoggingOptions converts the logging settings for logging.SetupLogger
func (c *Config) LoggingOptions() logging.Options {
	lvl, _ := logging.ParseLevel(c.LogLevel)
	return logging.Options{Level: lvl, SeqURL: c.SeqURL}
}
