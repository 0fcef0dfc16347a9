package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/adventure-engine/internal/config"
	"github.com/KirkDiggler/adventure-engine/internal/content"
	"github.com/KirkDiggler/adventure-engine/internal/engine"
	"github.com/KirkDiggler/adventure-engine/internal/errors"
	"github.com/KirkDiggler/adventure-engine/internal/pkg/clock"
	"github.com/KirkDiggler/adventure-engine/internal/redis"
	"github.com/KirkDiggler/adventure-engine/internal/repositories/worlds"
)

const redisDialTimeout = 5 * time.Second

// app carries settings shared by every subcommand
type app struct {
	configPath string
	logLevel   string
	redisAddr  string
	worldID    string
	policy     string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "adventure",
		Short: "Play and manage text adventures",
		Long: `adventure plays room-and-object text adventures defined in YAML, checks
world files for authoring mistakes and publishes them to Redis.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.redisAddr, "redis-addr", "", "redis address")
	flags.StringVar(&a.worldID, "world", "", "world ID")
	flags.StringVar(&a.policy, "solo-use-policy", "", "how solo use without a room is treated (strict, lenient)")

	root.AddCommand(
		a.newPlayCmd(),
		a.newValidateCmd(),
		a.newPublishCmd(),
		a.newWorldsCmd(),
	)
	return root
}

// setup loads the config file, applies flag overrides and installs the
// default logger
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("redis-addr") {
		cfg.Redis.Addr = a.redisAddr
	}
	if flags.Changed("world") {
		cfg.WorldID = a.worldID
	}
	if flags.Changed("solo-use-policy") {
		cfg.SoloUsePolicy = engine.SoloUsePolicy(a.policy)
	}
	if err := a.applyLocal(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid settings")
	}
	cfg.SoloUsePolicy, _ = engine.ParseSoloUsePolicy(string(cfg.SoloUsePolicy))

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))
	a.cfg = cfg
	return nil
}

// applyLocal copies subcommand flags that override config values
func (a *app) applyLocal(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if f := flags.Lookup("source"); f != nil && f.Changed {
		cfg.Source = f.Value.String()
	}
	if f := flags.Lookup("content"); f != nil && f.Changed {
		cfg.ContentPath = f.Value.String()
	}
	if f := flags.Lookup("no-color"); f != nil && f.Changed {
		noColor, err := flags.GetBool("no-color")
		if err != nil {
			return errors.Wrap(err, "failed to read --no-color")
		}
		cfg.Color = !noColor
	}
	return nil
}

func (a *app) validateOptions() *content.ValidateOptions {
	return &content.ValidateOptions{SoloUsePolicy: a.cfg.SoloUsePolicy}
}

// openRedis connects to the configured redis and checks it answers
func (a *app) openRedis(ctx context.Context) (worlds.Repository, func(), error) {
	client, err := redis.NewClient(a.cfg.Redis.Addr, &redis.Options{
		PoolSize:    a.cfg.Redis.PoolSize,
		DialTimeout: redisDialTimeout,
		UseTLS:      a.cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, nil, err
	}
	closeClient := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}

	if err := redis.Ping(ctx, client); err != nil {
		closeClient()
		return nil, nil, err
	}

	repo, err := worlds.NewRedis(&worlds.RedisConfig{Client: client, Clock: clock.New()})
	if err != nil {
		closeClient()
		return nil, nil, err
	}
	return repo, closeClient, nil
}

// openRepository returns the repository play loads from. The file source
// preloads the content file into memory under the configured world ID.
func (a *app) openRepository(ctx context.Context) (worlds.Repository, func(), error) {
	if a.cfg.Source == config.SourceRedis {
		return a.openRedis(ctx)
	}

	data, doc, err := readDocument(a.cfg.ContentPath)
	if err != nil {
		return nil, nil, err
	}

	repo := worlds.NewInMemory(clock.New())
	if _, err := repo.Put(ctx, &worlds.PutInput{ID: a.cfg.WorldID, Title: doc.Title, Content: data}); err != nil {
		return nil, nil, err
	}
	return repo, func() {}, nil
}

// readDocument reads and parses a world file
func readDocument(path string) ([]byte, *content.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read "+path)
	}
	doc, err := content.Parse(data)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return data, doc, nil
}
