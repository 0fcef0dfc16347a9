package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/adventure-engine/internal/repositories/worlds"
)

func (a *app) newWorldsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worlds",
		Short: "Manage worlds stored in Redis",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored worlds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, closeRepo, err := a.openRedis(cmd.Context())
			if err != nil {
				return err
			}
			defer closeRepo()

			out, err := repo.List(cmd.Context(), &worlds.ListInput{})
			if err != nil {
				return err
			}
			for _, w := range out.Worlds {
				updated := time.Unix(w.UpdatedAt, 0).UTC().Format(time.RFC3339)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", w.ID, w.Title, updated)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete a stored world",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeRepo, err := a.openRedis(cmd.Context())
			if err != nil {
				return err
			}
			defer closeRepo()

			if _, err := repo.Delete(cmd.Context(), &worlds.DeleteInput{ID: args[0]}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	})

	return cmd
}
