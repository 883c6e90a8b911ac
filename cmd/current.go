package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/in0ni/hamster/internal/config"
	"github.com/in0ni/hamster/internal/i18n"
	"github.com/in0ni/hamster/internal/storage"
	"github.com/in0ni/hamster/internal/timecalc"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the ongoing activity",
	Args:  cobra.NoArgs,
	RunE:  runCurrent,
}

func runCurrent(cmd *cobra.Command, args []string) error {
	now := time.Now()

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

	facts, err := storage.TodaysFacts(base, now, cfg.DayStartHour())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Only the newest fact can be ongoing.
	if len(facts) > 0 && facts[len(facts)-1].Ongoing() {
		last := facts[len(facts)-1]
		fmt.Printf("%s %s\n", last.String(), timecalc.FormatClock(last.Delta(now)))
		return nil
	}

	fmt.Println(i18n.T("No activity"))
	return nil
}
