package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"purefix/internal/tweak"
)

var tweaksCmd = &cobra.Command{
	Use:   "tweaks",
	Short: "List registered refactorings",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range tweak.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-28s %-10s %s\n", t.ID(), t.Kind(), t.Title())
		}
		return nil
	},
}
