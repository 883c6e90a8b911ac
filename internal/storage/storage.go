// Package storage implements the JSON day-file fact store under ~/.hamster.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/in0ni/hamster/internal/model"
	"github.com/in0ni/hamster/internal/timecalc"
)

// activeLookbackDays bounds the search for a still-running fact.
const activeLookbackDays = 7

// listingLookbackDays bounds the scan for activity/category name listings.
const listingLookbackDays = 90

// BaseDir returns the root data directory (~/.hamster).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".hamster"), nil
}

// dayFilePath returns the path for the given date's JSON file.
func dayFilePath(base string, t time.Time) string {
	return filepath.Join(base, t.Format("2006"), t.Format("01"), t.Format("02")+".json")
}

// LoadDay loads the DayFile for the given date. Returns an empty DayFile if not found.
func LoadDay(base string, t time.Time) (model.DayFile, error) {
	path := dayFilePath(base, t)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return model.DayFile{Date: t.Format("2006-01-02"), Facts: []model.Fact{}}, nil
	}
	if err != nil {
		return model.DayFile{}, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var df model.DayFile
	if err := json.Unmarshal(data, &df); err != nil {
		// Back up corrupt file and abort.
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return model.DayFile{}, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}
	return df, nil
}

// SaveDay atomically writes a DayFile for the given date.
func SaveDay(base string, t time.Time, df model.DayFile) error {
	path := dayFilePath(base, t)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(df, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// UpdateFact replaces or appends a fact in the DayFile for the given date.
func UpdateFact(base string, day time.Time, fact model.Fact) error {
	df, err := LoadDay(base, day)
	if err != nil {
		return err
	}
	for i, f := range df.Facts {
		if f.ID == fact.ID {
			df.Facts[i] = fact
			return SaveDay(base, day, df)
		}
	}
	df.Facts = append(df.Facts, fact)
	return SaveDay(base, day, df)
}

// FindActive searches recent day files (most recent first) for a fact with no
// end time. It returns the fact and the date it was found on.
func FindActive(base string, now time.Time) (*model.Fact, time.Time, error) {
	for i := 0; i < activeLookbackDays; i++ {
		day := now.AddDate(0, 0, -i)
		df, err := LoadDay(base, day)
		if err != nil {
			return nil, time.Time{}, err
		}
		for j := len(df.Facts) - 1; j >= 0; j-- {
			if df.Facts[j].End == nil {
				return &df.Facts[j], day, nil
			}
		}
	}
	return nil, time.Time{}, nil
}

// GetFacts loads all facts whose start falls inside the hamster-day-adjusted
// window, optionally filtered by a search term, sorted ascending by start.
func GetFacts(base string, r timecalc.Range, search string, dayStart int) ([]model.Fact, error) {
	window := timecalc.HamsterWindow(r, dayStart)

	var facts []model.Fact
	for d := timecalc.StartOfDay(window.Start); !d.After(window.End); d = d.AddDate(0, 0, 1) {
		df, err := LoadDay(base, d)
		if err != nil {
			return nil, err
		}
		for _, f := range df.Facts {
			if f.Start.Before(window.Start) || f.Start.After(window.End) {
				continue
			}
			if search != "" && !matchesSearch(f, search) {
				continue
			}
			facts = append(facts, f)
		}
	}

	sort.SliceStable(facts, func(i, j int) bool {
		return facts[i].Start.Before(facts[j].Start)
	})
	return facts, nil
}

// TodaysFacts returns the facts of the current hamster day.
func TodaysFacts(base string, now time.Time, dayStart int) ([]model.Fact, error) {
	start := timecalc.DayStartOf(now, dayStart)
	r := timecalc.Range{Start: start, End: start.Add(24*time.Hour - time.Second)}
	return GetFacts(base, r, "", 0)
}

// matchesSearch reports whether the term occurs in the fact's activity,
// category, description or any tag, case-insensitively.
func matchesSearch(f model.Fact, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{f.Activity, f.Category, f.Description} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	for _, tag := range f.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Activities returns the distinct activity names seen recently, optionally
// filtered by a case-insensitive substring, sorted alphabetically. The
// second return value maps each activity to its last seen category.
func Activities(base string, now time.Time, search string) ([]string, map[string]string, error) {
	names := map[string]string{}
	for i := listingLookbackDays - 1; i >= 0; i-- {
		df, err := LoadDay(base, now.AddDate(0, 0, -i))
		if err != nil {
			return nil, nil, err
		}
		for _, f := range df.Facts {
			if search != "" && !strings.Contains(strings.ToLower(f.Activity), strings.ToLower(search)) {
				continue
			}
			names[f.Activity] = f.Category
		}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)
	return sorted, names, nil
}

// Categories returns the distinct category names seen recently, sorted.
func Categories(base string, now time.Time) ([]string, error) {
	seen := map[string]bool{}
	for i := 0; i < listingLookbackDays; i++ {
		df, err := LoadDay(base, now.AddDate(0, 0, -i))
		if err != nil {
			return nil, err
		}
		for _, f := range df.Facts {
			if f.Category != "" {
				seen[f.Category] = true
			}
		}
	}

	sorted := make([]string, 0, len(seen))
	for name := range seen {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)
	return sorted, nil
}
