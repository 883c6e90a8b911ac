package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/in0ni/hamster/internal/storage"
)

var activitiesCmd = &cobra.Command{
	Use:   "activities [search]",
	Short: "List known activity names",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runActivities,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List known category names",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func runActivities(cmd *cobra.Command, args []string) error {
	search := ""
	if len(args) > 0 {
		search = args[0]
	}

	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	names, categories, err := storage.Activities(base, time.Now(), search)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	for _, name := range names {
		if categories[name] != "" {
			fmt.Printf("%s@%s\n", name, categories[name])
		} else {
			fmt.Println(name)
		}
	}
	return nil
}

func runCategories(cmd *cobra.Command, args []string) error {
	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	names, err := storage.Categories(base, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
