package timecalc_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/in0ni/hamster/internal/timecalc"
)

var rangeNow = time.Date(2012, 8, 15, 14, 30, 0, 0, time.UTC)

func TestParseRangeEmpty(t *testing.T) {
	r, err := timecalc.ParseRange(nil, rangeNow)
	if err != nil {
		t.Fatalf("ParseRange(nil): %v", err)
	}
	wantStart := time.Date(2012, 8, 15, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2012, 8, 15, 23, 59, 59, 0, time.UTC)
	if !r.Start.Equal(wantStart) || !r.End.Equal(wantEnd) {
		t.Errorf("ParseRange(nil) = (%v, %v), want (%v, %v)", r.Start, r.End, wantStart, wantEnd)
	}
}

func TestParseRangeTwoDates(t *testing.T) {
	r, err := timecalc.ParseRange([]string{"2012-08-01", "2012-08-30"}, rangeNow)
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	wantStart := time.Date(2012, 8, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2012, 8, 30, 23, 59, 59, 0, time.UTC)
	if !r.Start.Equal(wantStart) || !r.End.Equal(wantEnd) {
		t.Errorf("got (%v, %v), want (%v, %v)", r.Start, r.End, wantStart, wantEnd)
	}
}

func TestParseRangeSingleDate(t *testing.T) {
	r, err := timecalc.ParseRange([]string{"2012-08-01"}, rangeNow)
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	wantStart := time.Date(2012, 8, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2012, 8, 1, 23, 59, 59, 0, time.UTC)
	if !r.Start.Equal(wantStart) || !r.End.Equal(wantEnd) {
		t.Errorf("got (%v, %v), want (%v, %v)", r.Start, r.End, wantStart, wantEnd)
	}
}

func TestParseRangeRelative(t *testing.T) {
	r, err := timecalc.ParseRange([]string{"-20"}, rangeNow)
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	wantStart := rangeNow.Add(-20 * time.Minute)
	wantEnd := time.Date(2012, 8, 15, 23, 59, 59, 0, time.UTC)
	if !r.Start.Equal(wantStart) || !r.End.Equal(wantEnd) {
		t.Errorf("got (%v, %v), want (%v, %v)", r.Start, r.End, wantStart, wantEnd)
	}
}

func TestParseRangeExplicitTimes(t *testing.T) {
	// A start with time of day keeps it; an end with time of day is literal.
	r, err := timecalc.ParseRange([]string{"2012-08-01", "09:15", "2012-08-02", "17:45"}, rangeNow)
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	wantStart := time.Date(2012, 8, 1, 9, 15, 0, 0, time.UTC)
	wantEnd := time.Date(2012, 8, 2, 17, 45, 0, 0, time.UTC)
	if !r.Start.Equal(wantStart) || !r.End.Equal(wantEnd) {
		t.Errorf("got (%v, %v), want (%v, %v)", r.Start, r.End, wantStart, wantEnd)
	}
	if !r.StartExplicit || !r.EndExplicit {
		t.Errorf("explicit flags = (%v, %v), want (true, true)", r.StartExplicit, r.EndExplicit)
	}
}

func TestParseRangeEndWithoutTime(t *testing.T) {
	r, err := timecalc.ParseRange([]string{"2012-08-01", "09:15", "2012-08-02"}, rangeNow)
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	wantEnd := time.Date(2012, 8, 2, 23, 59, 59, 0, time.UTC)
	if !r.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", r.End, wantEnd)
	}
	if r.EndExplicit {
		t.Error("end without time of day should not be marked explicit")
	}
}

func TestParseRangeBadToken(t *testing.T) {
	tests := []struct {
		tokens []string
		token  string
	}{
		{[]string{"banana"}, "banana"},
		{[]string{"2012-8-1"}, "2012-8-1"},
		{[]string{"2012-08-01", "notatime"}, "notatime"},
		{[]string{"-20", "-30"}, "-30"},                             // relative end is not allowed
		{[]string{"2012-08-01", "2012-08-02", "2012-08-03"}, "2012-08-03"}, // too many expressions
	}
	for _, tt := range tests {
		_, err := timecalc.ParseRange(tt.tokens, rangeNow)
		if err == nil {
			t.Errorf("ParseRange(%v): expected error", tt.tokens)
			continue
		}
		var parseErr *timecalc.ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("ParseRange(%v): error %v is not a ParseError", tt.tokens, err)
			continue
		}
		if parseErr.Token != tt.token {
			t.Errorf("ParseRange(%v): offending token %q, want %q", tt.tokens, parseErr.Token, tt.token)
		}
		if !strings.Contains(err.Error(), tt.token) {
			t.Errorf("ParseRange(%v): message %q does not name the token", tt.tokens, err.Error())
		}
	}
}
