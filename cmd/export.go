package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/in0ni/hamster/internal/config"
	"github.com/in0ni/hamster/internal/export"
	"github.com/in0ni/hamster/internal/storage"
	"github.com/in0ni/hamster/internal/timecalc"
)

var exportCmd = &cobra.Command{
	Use:   "export [" + strings.Join(export.Names(), "|") + "] [start-date [end-date]]",
	Short:              "Export facts to stdout",
	Args:               cobra.MaximumNArgs(5),
	DisableFlagParsing: true,
	RunE:               runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	if helpRequested(args) {
		return cmd.Help()
	}
	now := time.Now()

	format := export.HTML
	if len(args) > 0 {
		var err error
		if format, err = export.ParseFormat(args[0]); err != nil {
			return err
		}
		args = args[1:]
	}

	r, err := timecalc.ParseRange(rangeTokens(args), now)
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

	facts, err := storage.GetFacts(base, r, "", cfg.DayStartHour())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	return export.Render(format, os.Stdout, facts, r, now)
}
