package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/in0ni/hamster/internal/config"
	"github.com/in0ni/hamster/internal/report"
	"github.com/in0ni/hamster/internal/storage"
	"github.com/in0ni/hamster/internal/timecalc"
)

var listCmd = &cobra.Command{
	Use:   "list [start-date [end-date]]",
	Short: "List facts within a date range",
	Args:  cobra.MaximumNArgs(4),
	// Relative '-20' range tokens would otherwise be eaten as flags.
	DisableFlagParsing: true,
	RunE:               runList,
}

func runList(cmd *cobra.Command, args []string) error {
	if helpRequested(args) {
		return cmd.Help()
	}
	return listFacts(args, "")
}

// helpRequested restores -h/--help on commands that parse their own
// arguments.
func helpRequested(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

// rangeTokens re-splits command arguments on whitespace, so a quoted
// "2012-08-01 00:00" and separate date/time arguments parse the same way.
func rangeTokens(args []string) []string {
	return strings.Fields(strings.Join(args, " "))
}

// listFacts resolves the range once, fetches matching facts and renders the
// report. Shared by list and search.
func listFacts(rangeArgs []string, search string) error {
	now := time.Now()

	r, err := timecalc.ParseRange(rangeTokens(rangeArgs), now)
	if err != nil {
		return err
	}

	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	facts, err := storage.GetFacts(base, r, search, cfg.DayStartHour())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	report.Render(os.Stdout, facts, r, now)
	return nil
}
