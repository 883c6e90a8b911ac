package cmd

import (
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <term> [start-date [end-date]]",
	Short: "List facts matching a search term",
	Long: `Search checks the term against activity, category, description and
tags, case-insensitively, within the given date range (default today).`,
	Args:               cobra.MinimumNArgs(1),
	DisableFlagParsing: true,
	RunE:               runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	if helpRequested(args) {
		return cmd.Help()
	}
	return listFacts(args[1:], args[0])
}
