package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/in0ni/hamster/internal/model"
	"github.com/in0ni/hamster/internal/storage"
	"github.com/in0ni/hamster/internal/timecalc"
)

var startCmd = &cobra.Command{
	Use:   "start <activity>[@category][, description #tag ...] [--tags a,b] [-minutes]",
	Short: "Start tracking an activity",
	Long: `Start begins a new fact. A trailing '-N' token backdates the start
by N minutes. A running fact is stopped first.`,
	Args:               cobra.MinimumNArgs(1),
	DisableFlagParsing: true,
	RunE:               runStart,
}

// splitTags strips --tags flags from the raw argument list. Flag parsing is
// disabled on this command so that '-N' backdate tokens survive, which means
// --tags has to be picked out by hand.
func splitTags(args []string) (rest []string, tags []string) {
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case strings.HasPrefix(arg, "--tags="):
			tags = append(tags, parseTagList(strings.TrimPrefix(arg, "--tags="))...)
		case arg == "--tags" && i+1 < len(args):
			tags = append(tags, parseTagList(args[i+1])...)
			i++
		default:
			rest = append(rest, arg)
		}
	}
	return rest, tags
}

func parseTagList(list string) []string {
	var tags []string
	for _, tag := range strings.Split(list, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func runStart(cmd *cobra.Command, args []string) error {
	if helpRequested(args) {
		return cmd.Help()
	}
	now := time.Now()
	start := now

	args, tags := splitTags(args)
	if len(args) == 0 {
		return errors.New("please specify activity")
	}

	// A trailing "-N" token backdates the start.
	if last := args[len(args)-1]; strings.HasPrefix(last, "-") {
		r, err := timecalc.ParseRange([]string{last}, now)
		if err != nil {
			return err
		}
		start = r.Start
		args = args[:len(args)-1]
	}

	fact := model.ParseFact(strings.Join(args, " "))
	if fact.Activity == "" {
		return errors.New("please specify activity")
	}
	fact.Tags = append(fact.Tags, tags...)
	if fact.Tags == nil {
		fact.Tags = []string{}
	}
	fact.ID = timecalc.GenerateID(start)
	fact.Start = start
	fact.Source = "cli"

	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Stop a running fact before starting the new one.
	active, activeDay, err := storage.FindActive(base, now)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if active != nil {
		fmt.Fprintf(os.Stderr, "Warning: stopping ongoing activity %q\n", active.String())
		if err := stopFact(base, active, activeDay, now); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	if err := storage.UpdateFact(base, start, fact); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Tracking %s since %s\n", fact.String(), start.Format("15:04"))
	return nil
}

// stopFact closes a fact at the given instant.
func stopFact(base string, fact *model.Fact, day time.Time, at time.Time) error {
	end := at
	fact.End = &end
	return storage.UpdateFact(base, day, *fact)
}
