package report

import (
	"sort"
	"time"

	"github.com/in0ni/hamster/internal/i18n"
	"github.com/in0ni/hamster/internal/timecalc"
)

// CategoryTotals accumulates durations per category across one rendering
// pass. The zero value is ready to use; construct a fresh one per report.
type CategoryTotals struct {
	order  []string
	totals map[string]time.Duration
}

// Add records one fact's duration under its category. An empty category is
// coerced to the "Unsorted" label.
func (ct *CategoryTotals) Add(category string, delta time.Duration) {
	if category == "" {
		category = i18n.T("Unsorted")
	}
	if ct.totals == nil {
		ct.totals = make(map[string]time.Duration)
	}
	if _, seen := ct.totals[category]; !seen {
		ct.order = append(ct.order, category)
	}
	ct.totals[category] += delta
}

// Summary returns "<category>: <HhMM>" items sorted by descending duration
// (ties keep first-encountered order) and the grand total.
func (ct *CategoryTotals) Summary() ([]string, time.Duration) {
	cats := append([]string(nil), ct.order...)
	sort.SliceStable(cats, func(i, j int) bool {
		return ct.totals[cats[i]] > ct.totals[cats[j]]
	})

	var items []string
	var total time.Duration
	for _, cat := range cats {
		items = append(items, cat+": "+timecalc.FormatDuration(ct.totals[cat]))
		total += ct.totals[cat]
	}
	return items, total
}
