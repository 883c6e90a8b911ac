package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hamster",
	Short: "hamster – command-line time tracking",
	Long: `hamster is a command-line activity tracker and reporter.
Facts (activity@category, tags, description, start/end) are stored as
human-readable JSON files in ~/.hamster/.

Time formats:
  * 'YYYY-MM-DD [hh:mm]': if the start date is missing it defaults to today;
    if the end date is missing it defaults to the start date.
  * '-minutes': relative time in minutes before now.

A "hamster day" starts at the time set in the configuration (default 05:00)
and ends one second earlier the next day, so late-night facts are reported
with the evening they belong to.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(activitiesCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(exportCmd)
}
