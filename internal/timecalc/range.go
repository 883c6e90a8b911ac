package timecalc

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Range is a resolved (start, end) instant pair. Start is inclusive; an end
// derived from a bare date covers that whole calendar day (23:59:59).
// StartExplicit and EndExplicit record that the boundary carried an explicit
// time of day, which exempts it from hamster-day shifting.
type Range struct {
	Start         time.Time
	End           time.Time
	StartExplicit bool
	EndExplicit   bool
}

// ParseError reports a date/time token that could not be interpreted.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse time token %q", e.Token)
}

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// expr is one parsed date/time expression.
type expr struct {
	at       time.Time
	hasClock bool // time of day was given explicitly (or implied by -N)
	relative bool // came from a "-N" minutes-ago token
	token    string
}

// ParseRange resolves user-supplied range tokens against a single wall-clock
// snapshot. Supported expressions, tried in order per token:
//
//  1. absolute "YYYY-MM-DD", optionally followed by an "hh:mm" token
//  2. relative "-N" — N minutes before now, usable only as a start
//
// Defaulting: no expressions means today; a lone expression is the start and
// the end falls on the same calendar day at 23:59:59; an end without an
// explicit time of day extends to 23:59:59 on its date.
func ParseRange(tokens []string, now time.Time) (Range, error) {
	exprs, err := parseExprs(tokens, now)
	if err != nil {
		return Range{}, err
	}

	// Defaulting rules, evaluated top to bottom; the first match wins.
	switch {
	case len(exprs) == 0:
		return Range{Start: StartOfDay(now), End: EndOfDay(now)}, nil

	case len(exprs) == 1:
		start := exprs[0]
		return Range{Start: start.at, End: EndOfDay(start.at), StartExplicit: start.hasClock}, nil

	default:
		start, end := exprs[0], exprs[1]
		if end.relative {
			return Range{}, &ParseError{Token: end.token}
		}
		r := Range{Start: start.at, End: end.at, StartExplicit: start.hasClock, EndExplicit: end.hasClock}
		if !end.hasClock {
			r.End = EndOfDay(end.at)
		}
		return r, nil
	}
}

// parseExprs tokenizes into at most two expressions, consuming a trailing
// "hh:mm" token into the preceding date.
func parseExprs(tokens []string, now time.Time) ([]expr, error) {
	var exprs []expr
	for i := 0; i < len(tokens); i++ {
		token := strings.TrimSpace(tokens[i])
		if token == "" {
			continue
		}
		if len(exprs) == 2 {
			return nil, &ParseError{Token: token}
		}

		if minutes, ok := parseRelative(token); ok {
			exprs = append(exprs, expr{
				at:       now.Add(-time.Duration(minutes) * time.Minute),
				hasClock: true,
				relative: true,
				token:    token,
			})
			continue
		}

		day, err := time.ParseInLocation(dateLayout, token, now.Location())
		if err != nil {
			return nil, &ParseError{Token: token}
		}
		e := expr{at: day, token: token}

		// A following hh:mm token belongs to this date.
		if i+1 < len(tokens) {
			if clock, clockErr := time.ParseInLocation(clockLayout, tokens[i+1], now.Location()); clockErr == nil {
				e.at = time.Date(day.Year(), day.Month(), day.Day(),
					clock.Hour(), clock.Minute(), 0, 0, now.Location())
				e.hasClock = true
				e.token = token + " " + tokens[i+1]
				i++
			}
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

// parseRelative matches "-N" minutes-ago tokens.
func parseRelative(token string) (int, bool) {
	rest, ok := strings.CutPrefix(token, "-")
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
