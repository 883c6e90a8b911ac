package model

import (
	"strings"
	"time"
)

// Fact represents a single tracked activity interval.
type Fact struct {
	ID          string     `json:"id"`
	Activity    string     `json:"activity"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	Description string     `json:"description"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end"`
	Source      string     `json:"source"`
}

// DayFile is the top-level structure stored in each daily JSON file.
type DayFile struct {
	Date  string `json:"date"`
	Facts []Fact `json:"facts"`
}

// Delta returns the fact's duration. Ongoing facts are measured against now.
func (f Fact) Delta(now time.Time) time.Duration {
	if f.End != nil {
		return f.End.Sub(f.Start)
	}
	return now.Sub(f.Start)
}

// Ongoing reports whether the fact has no end time yet.
func (f Fact) Ongoing() bool {
	return f.End == nil
}

// String renders the fact in its canonical "activity@category" form.
func (f Fact) String() string {
	if f.Category == "" {
		return f.Activity
	}
	return f.Activity + "@" + f.Category
}

// ParseFact parses free fact text of the form
//
//	activity[@category][, description [#tag ...]]
//
// Words starting with # after the comma become tags; the rest of the
// comma tail is the description.
func ParseFact(text string) Fact {
	var fact Fact

	head := strings.TrimSpace(text)
	if i := strings.Index(head, ","); i >= 0 {
		tail := strings.TrimSpace(head[i+1:])
		head = strings.TrimSpace(head[:i])

		var desc []string
		for _, word := range strings.Fields(tail) {
			if tag, ok := strings.CutPrefix(word, "#"); ok && tag != "" {
				fact.Tags = append(fact.Tags, tag)
				continue
			}
			desc = append(desc, word)
		}
		fact.Description = strings.Join(desc, " ")
	}

	if i := strings.Index(head, "@"); i >= 0 {
		fact.Activity = strings.TrimSpace(head[:i])
		fact.Category = strings.TrimSpace(head[i+1:])
	} else {
		fact.Activity = head
	}

	return fact
}
