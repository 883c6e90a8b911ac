package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/in0ni/hamster/internal/storage"
	"github.com/in0ni/hamster/internal/timecalc"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop tracking the ongoing activity",
	Args:  cobra.NoArgs,
	RunE:  runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
	now := time.Now()

	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	active, activeDay, err := storage.FindActive(base, now)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if active == nil {
		fmt.Fprintln(os.Stderr, "No activity to stop.")
		os.Exit(1)
	}

	if err := stopFact(base, active, activeDay, now); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Stopped %s after %s\n",
		active.String(), timecalc.FormatDuration(now.Sub(active.Start)))
	return nil
}
