package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/adventure-engine/internal/content"
	"github.com/KirkDiggler/adventure-engine/internal/errors"
)

func (a *app) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check world files for authoring mistakes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				if err := a.validateFile(cmd.OutOrStdout(), path); err != nil {
					failed++
				}
			}
			if failed > 0 {
				return errors.InvalidArgumentf("%d of %d files have problems", failed, len(args))
			}
			return nil
		},
	}
}

func (a *app) validateFile(out io.Writer, path string) error {
	_, doc, err := readDocument(path)
	if err == nil {
		err = content.Validate(doc, a.validateOptions())
	}
	if err != nil {
		reportProblems(out, path, err)
		return err
	}

	_, _ = fmt.Fprintf(out, "ok %s: %q, %d rooms, %d objects, %d doors\n",
		path, doc.Title, len(doc.Rooms), len(doc.Objects), len(doc.Doors))
	return nil
}

// reportProblems prints one line per field problem, sorted by field
func reportProblems(out io.Writer, path string, err error) {
	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	if !ok {
		_, _ = fmt.Fprintf(out, "FAIL %s: %s\n", path, err)
		return
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	_, _ = fmt.Fprintf(out, "FAIL %s\n", path)
	for _, name := range names {
		for _, message := range fields[name] {
			_, _ = fmt.Fprintf(out, "  %s: %s\n", name, message)
		}
	}
}
