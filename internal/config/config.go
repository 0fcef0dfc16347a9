// Package config holds runtime settings for the adventure command.
package config

import (
	"bytes"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/adventure-engine/internal/engine"
	"github.com/KirkDiggler/adventure-engine/internal/errors"
)

// Content sources
const (
	SourceFile  = "file"
	SourceRedis = "redis"
)

// Config is the runtime configuration
type Config struct {
	// ContentPath is the world file played with the file source and
	// uploaded by publish
	ContentPath string `yaml:"content_path"`
	// WorldID names the world in the repository
	WorldID string `yaml:"world_id"`
	// Source is where play loads the world from
	Source string `yaml:"source"`

	Redis RedisConfig `yaml:"redis"`

	SoloUsePolicy engine.SoloUsePolicy `yaml:"solo_use_policy"`
	LogLevel      string               `yaml:"log_level"`
	Color         bool                 `yaml:"color"`
}

// RedisConfig holds connection settings for the redis source
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	PoolSize int    `yaml:"pool_size"`
	UseTLS   bool   `yaml:"use_tls"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		ContentPath: "data/worlds/manor.yaml",
		WorldID:     "manor",
		Source:      SourceFile,
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			PoolSize: 10,
		},
		SoloUsePolicy: engine.SoloUseStrict,
		LogLevel:      "warn",
		Color:         true,
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults; an empty path skips the read.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config "+path)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config "+path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("world_id", c.WorldID, vb)
	errors.ValidateEnum("source", c.Source, []string{SourceFile, SourceRedis}, vb)
	errors.ValidateEnum("log_level", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)

	if _, err := engine.ParseSoloUsePolicy(string(c.SoloUsePolicy)); err != nil {
		vb.Fieldf("solo_use_policy", "unknown policy %q", c.SoloUsePolicy)
	}

	switch c.Source {
	case SourceFile:
		errors.ValidateRequired("content_path", c.ContentPath, vb)
	case SourceRedis:
		errors.ValidateRequired("redis.addr", c.Redis.Addr, vb)
	}
	if c.Redis.PoolSize < 0 {
		vb.Field("redis.pool_size", "must not be negative")
	}

	return vb.Build()
}

// Level maps LogLevel onto slog. Unknown values fall back to warn.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
