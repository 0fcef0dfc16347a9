package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/adventure-engine/internal/content"
	"github.com/KirkDiggler/adventure-engine/internal/repositories/worlds"
)

func (a *app) newPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish FILE",
		Short: "Validate a world file and store it in Redis",
		Long: `Validate a world file and store it in Redis under the world ID given with
--world (or the config file). Invalid worlds are never stored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			if err := content.Validate(doc, a.validateOptions()); err != nil {
				reportProblems(cmd.OutOrStdout(), args[0], err)
				return err
			}

			repo, closeRepo, err := a.openRedis(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			out, err := repo.Put(ctx, &worlds.PutInput{ID: a.cfg.WorldID, Title: doc.Title, Content: data})
			if err != nil {
				return err
			}

			slog.Info("world published", "world_id", out.Data.ID, "bytes", len(out.Data.Content))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "published %s as %s\n", args[0], out.Data.ID)
			return nil
		},
	}
}
