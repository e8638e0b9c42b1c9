package main

import (
	"github.com/spf13/cobra"

	"logrelay/internal/logging"
)

func newLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "levels",
		Short:       "Show the logging levels and their glyphs",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.PrintLevelInfo(cmd.OutOrStdout())
			return nil
		},
	}
}
