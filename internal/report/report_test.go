package report_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/in0ni/hamster/internal/model"
	"github.com/in0ni/hamster/internal/report"
	"github.com/in0ni/hamster/internal/timecalc"
)

func mustRange(start, end time.Time) timecalc.Range {
	return timecalc.Range{Start: start, End: end}
}

func endedFact(activity, category string, start time.Time, d time.Duration) model.Fact {
	end := start.Add(d)
	return model.Fact{
		Activity: activity,
		Category: category,
		Start:    start,
		End:      &end,
	}
}

func TestRenderSingleDay(t *testing.T) {
	day := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 2, 27, 12, 0, 0, 0, time.UTC)
	r := mustRange(day, timecalc.EndOfDay(day))

	f1 := endedFact("hamster", "Work", day.Add(9*time.Hour), 90*time.Minute)
	f1.Tags = []string{"dev", "go"}
	f2 := endedFact("emails", "", day.Add(11*time.Hour), 15*time.Minute)
	f2.Description = "inbox zero push"

	var buf bytes.Buffer
	report.Render(&buf, []model.Fact{f1, f2}, r, now)

	separator := strings.Repeat("-", 49)
	want := "\n" + strings.Join([]string{
		"Start | End   | Duration | Activity | Category",
		separator,
		"09:00 | 10:30 | 1h30     | hamster  | Work    ",
		"    #dev #go",
		"11:00 | 11:15 | 0h15     | emails   |         ",
		"    inbox zero push",
		separator,
		"Work: 1h30, Unsorted: 0h15",
		"Total: 1h45",
	}, "\n") + "\n\n"

	if got := buf.String(); got != want {
		t.Errorf("Render output:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	day := time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)
	r := mustRange(day, timecalc.EndOfDay(day))

	var buf bytes.Buffer
	report.Render(&buf, nil, r, day)

	separator := strings.Repeat("-", 47)
	want := "\n" + strings.Join([]string{
		"Start | End | Duration | Activity | Category",
		separator,
		separator,
		"Total: 0h00",
	}, "\n") + "\n\n"

	if got := buf.String(); got != want {
		t.Errorf("Render output:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderMultiDay(t *testing.T) {
	start := time.Date(2026, 2, 26, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC)
	now := time.Date(2026, 2, 27, 12, 0, 0, 0, time.UTC)

	// The activity name is longer than the "Activity" header; its column
	// must widen to fit while other columns stay independent.
	f1 := endedFact("VeryLongActivityName", "Work", start.Add(22*time.Hour), time.Hour)
	f2 := model.Fact{
		Activity: "ongoing",
		Category: "Work",
		Start:    time.Date(2026, 2, 27, 11, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	report.Render(&buf, []model.Fact{f1, f2}, mustRange(start, end), now)
	lines := strings.Split(buf.String(), "\n")

	header := lines[1]
	if !strings.Contains(header, "Activity            ") {
		t.Errorf("header does not pad the activity column to the widest cell: %q", header)
	}

	// The dash rule caps at 80 even though the columns sum wider.
	if len(lines[2]) != 80 {
		t.Errorf("separator length = %d, want 80", len(lines[2]))
	}

	row1 := lines[3]
	if !strings.HasPrefix(row1, "2026-02-26 22:00 | 2026-02-26 23:00 | 1h00") {
		t.Errorf("multi-day row missing date portion: %q", row1)
	}

	// The ongoing fact keeps an empty end cell and measures against now.
	row2 := lines[4]
	emptyEnd := "2026-02-27 11:00 | " + strings.Repeat(" ", 16) + " | 1h00"
	if !strings.HasPrefix(row2, emptyEnd) {
		t.Errorf("ongoing row = %q, want prefix %q", row2, emptyEnd)
	}

	if !strings.Contains(buf.String(), "Total: 2h00") {
		t.Errorf("missing grand total in:\n%s", buf.String())
	}
}
