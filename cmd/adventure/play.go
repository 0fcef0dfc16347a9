package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/adventure-engine/internal/engine"
	"github.com/KirkDiggler/adventure-engine/internal/errors"
	"github.com/KirkDiggler/adventure-engine/internal/handlers/console"
	"github.com/KirkDiggler/adventure-engine/internal/orchestrators/game"
	"github.com/KirkDiggler/adventure-engine/internal/pkg/idgen"
)

func (a *app) newPlayCmd() *cobra.Command {
	var (
		name       string
		showDeltas bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a world",
		Long:  `Play a world from a local file or from Redis. Type "help" once inside.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			repo, closeRepo, err := a.openRepository(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			eng, err := engine.New(&engine.Config{SoloUsePolicy: a.cfg.SoloUsePolicy})
			if err != nil {
				return err
			}

			service, err := game.NewOrchestrator(&game.Config{
				WorldRepo:     repo,
				Engine:        eng,
				IDGenerator:   idgen.NewUUID("session"),
				EventBus:      events.NewBus(),
				SoloUsePolicy: a.cfg.SoloUsePolicy,
			})
			if err != nil {
				return errors.Wrap(err, "failed to create game")
			}

			interactive := cmd.OutOrStdout() == os.Stdout && console.IsTerminal(os.Stdout)
			width := 0
			if interactive {
				width = console.Width(os.Stdout)
			}
			renderer, err := console.NewRenderer(&console.RendererConfig{
				Writer:     cmd.OutOrStdout(),
				Width:      width,
				Color:      a.cfg.Color && interactive,
				ShowDeltas: showDeltas,
			})
			if err != nil {
				return err
			}

			c, err := console.NewConsole(&console.Config{
				Service:  service,
				Renderer: renderer,
				Input:    cmd.InOrStdin(),
			})
			if err != nil {
				return err
			}

			_, err = c.Run(ctx, &console.RunInput{
				WorldID:    a.cfg.WorldID,
				PlayerName: name,
				AskName:    cmd.InOrStdin() == os.Stdin && console.IsTerminal(os.Stdin),
			})
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&name, "name", "", "player name; asked for when omitted on a terminal")
	flags.String("source", "", "where to load the world from (file, redis)")
	flags.String("content", "", "world file for the file source")
	flags.Bool("no-color", false, "disable coloured output")
	flags.BoolVar(&showDeltas, "deltas", false, "print state changes after each turn")

	return cmd
}
