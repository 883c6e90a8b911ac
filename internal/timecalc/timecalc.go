package timecalc

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateID creates a unique fact ID based on timestamp and random suffix.
func GenerateID(t time.Time) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffix := make([]byte, 5)
	for i := range suffix {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		suffix[i] = chars[n.Int64()]
	}
	return fmt.Sprintf("%s-%s", t.Format("20060102-150405"), string(suffix))
}

// FormatDuration formats a duration in "HhMM" notation, e.g. "1h05" or "0h00".
// Negative durations clamp to zero. Seconds are truncated, not rounded.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int64(d / time.Minute)
	return fmt.Sprintf("%dh%02d", minutes/60, minutes%60)
}

// FormatClock formats a duration as "HH:MM", used for the current-activity line.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int64(d / time.Minute)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayStartOf returns the beginning of the hamster day containing t, for the
// given day-start hour. A moment before dayStart o'clock still belongs to the
// previous calendar day's hamster day.
func DayStartOf(t time.Time, dayStart int) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), dayStart, 0, 0, 0, t.Location())
	if t.Before(day) {
		day = day.AddDate(0, 0, -1)
	}
	return day
}

// HamsterWindow shifts range boundaries that sit exactly on calendar day
// edges forward by the day-start hour, so that a bare date covers the logical
// day from dayStart o'clock to one second before dayStart the next morning.
// Boundaries with an explicit time of day are left untouched, even an
// explicit midnight.
func HamsterWindow(r Range, dayStart int) Range {
	if dayStart == 0 {
		return r
	}
	out := r
	if s := r.Start; !r.StartExplicit && s.Hour() == 0 && s.Minute() == 0 && s.Second() == 0 {
		out.Start = s.Add(time.Duration(dayStart) * time.Hour)
	}
	if e := r.End; !r.EndExplicit && e.Hour() == 23 && e.Minute() == 59 && e.Second() == 59 {
		out.End = e.Add(time.Duration(dayStart) * time.Hour)
	}
	return out
}
