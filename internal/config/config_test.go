package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/adventure-engine/internal/config"
	"github.com/KirkDiggler/adventure-engine/internal/engine"
	"github.com/KirkDiggler/adventure-engine/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(body string) string {
	path := filepath.Join(s.dir, "adventure.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaultIsValid() {
	cfg := config.Default()
	s.NoError(cfg.Validate())
	s.Equal(config.SourceFile, cfg.Source)
	s.Equal(engine.SoloUseStrict, cfg.SoloUsePolicy)
	s.Equal(slog.LevelWarn, cfg.Level())
}

func (s *ConfigTestSuite) TestLoadWithoutFile() {
	s.Run("empty path", func() {
		cfg, err := config.Load("")
		s.Require().NoError(err)
		s.Equal(config.Default(), cfg)
	})
	s.Run("missing file", func() {
		cfg, err := config.Load(filepath.Join(s.dir, "nope.yaml"))
		s.Require().NoError(err)
		s.Equal(config.Default(), cfg)
	})
	s.Run("empty file", func() {
		cfg, err := config.Load(s.write("\n"))
		s.Require().NoError(err)
		s.Equal(config.Default(), cfg)
	})
}

func (s *ConfigTestSuite) TestLoadOverridesDefaults() {
	path := s.write(`
world_id: castle
source: redis
redis:
  addr: redis.internal:6380
solo_use_policy: lenient
log_level: DEBUG
color: false
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal("castle", cfg.WorldID)
	s.Equal(config.SourceRedis, cfg.Source)
	s.Equal("redis.internal:6380", cfg.Redis.Addr)
	s.Equal(10, cfg.Redis.PoolSize)
	s.Equal(engine.SoloUseLenient, cfg.SoloUsePolicy)
	s.Equal(slog.LevelDebug, cfg.Level())
	s.False(cfg.Color)
	s.Equal("data/worlds/manor.yaml", cfg.ContentPath)
}

func (s *ConfigTestSuite) TestLoadErrors() {
	testCases := []struct {
		name string
		body string
	}{
		{name: "not yaml", body: "world_id: [\n"},
		{name: "unknown key", body: "worlds: manor\n"},
		{name: "bad source", body: "source: ftp\n"},
		{name: "bad policy", body: "solo_use_policy: sometimes\n"},
		{name: "bad log level", body: "log_level: loud\n"},
		{name: "blank world", body: "world_id: \"\"\n"},
		{name: "redis without addr", body: "source: redis\nredis:\n  addr: \"\"\n"},
		{name: "negative pool", body: "redis:\n  pool_size: -1\n"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg, err := config.Load(s.write(tc.body))
			s.Error(err)
			s.Nil(cfg)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}
