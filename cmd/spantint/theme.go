package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "List the active theme's named styles",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range activeTheme.Names() {
			st, _ := activeTheme.Style(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", name, backend.Render("The quick brown fox", st))
		}
		return nil
	},
}
