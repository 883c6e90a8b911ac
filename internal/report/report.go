// Package report renders the aligned, grouped and summarized fact listing.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/in0ni/hamster/internal/i18n"
	"github.com/in0ni/hamster/internal/model"
	"github.com/in0ni/hamster/internal/timecalc"
)

const (
	// detailWidth wraps descriptions and tag lines under a row.
	detailWidth = 76
	// summaryWidth wraps the category summary footer.
	summaryWidth = 80
	// maxSeparator caps the dash separator length.
	maxSeparator = 80
)

const numColumns = 5

// displayRow is the formatted projection of one fact: the five table cells
// plus the free-text fields printed beneath the row.
type displayRow struct {
	cells       [numColumns]string
	description string
	tags        string
}

// makeRow formats a fact for display. Timestamps carry the date portion only
// when the report spans more than one calendar day; an ongoing fact gets an
// empty end cell to flag that it is still running.
func makeRow(f model.Fact, withDate bool, now time.Time) displayRow {
	layout := "15:04"
	if withDate {
		layout = "2006-01-02 15:04"
	}

	row := displayRow{description: f.Description}
	row.cells[0] = f.Start.Format(layout)
	if f.End != nil {
		row.cells[1] = f.End.Format(layout)
	}
	row.cells[2] = timecalc.FormatDuration(f.Delta(now))
	row.cells[3] = f.Activity
	row.cells[4] = f.Category

	if len(f.Tags) > 0 {
		tagged := make([]string, len(f.Tags))
		for i, tag := range f.Tags {
			tagged[i] = "#" + tag
		}
		row.tags = strings.Join(tagged, " ")
	}
	return row
}

// Render writes the fact listing to w: a header, dash-bounded data rows with
// wrapped description and tag lines, and the per-category duration summary
// with a grand total. The facts are assumed sorted ascending by start time.
func Render(w io.Writer, facts []model.Fact, r timecalc.Range, now time.Time) {
	withDate := !timecalc.SameDay(r.Start, r.End)

	headers := [numColumns]string{
		i18n.T("Start"),
		i18n.T("End"),
		i18n.T("Duration"),
		i18n.T("Activity"),
		i18n.T("Category"),
	}

	var widths [numColumns]int
	for col, label := range headers {
		widths[col] = len(label)
	}
	rows := make([]displayRow, len(facts))
	for i, f := range facts {
		rows[i] = makeRow(f, withDate, now)
		for col, cell := range rows[i].cells {
			if len(cell) > widths[col] {
				widths[col] = len(cell)
			}
		}
	}

	line := func(cells [numColumns]string) string {
		padded := make([]string, numColumns)
		for col, cell := range cells {
			padded[col] = fmt.Sprintf("%-*s", widths[col], cell)
		}
		return strings.Join(padded, " | ")
	}

	rowWidth := 0
	for _, width := range widths {
		rowWidth += width + 3
	}
	separator := strings.Repeat("-", min(rowWidth, maxSeparator))

	fmt.Fprintln(w)
	fmt.Fprintln(w, line(headers))
	fmt.Fprintln(w, separator)

	var totals CategoryTotals
	for i, f := range facts {
		totals.Add(f.Category, f.Delta(now))
		fmt.Fprintln(w, line(rows[i].cells))

		for _, detail := range Wrap(rows[i].description, detailWidth) {
			fmt.Fprintf(w, "    %s\n", detail)
		}
		for _, detail := range Wrap(rows[i].tags, detailWidth) {
			fmt.Fprintf(w, "    %s\n", detail)
		}
	}

	fmt.Fprintln(w, separator)

	items, total := totals.Summary()
	for _, summary := range Wrap(strings.Join(items, ", "), summaryWidth) {
		fmt.Fprintln(w, summary)
	}
	fmt.Fprintf(w, "%s: %s\n", i18n.T("Total"), timecalc.FormatDuration(total))
	fmt.Fprintln(w)
}
