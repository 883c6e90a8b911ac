// Package i18n provides the fixed-phrase lookup used for report labels.
// Callers pass literal keys only; unknown keys come back unchanged so a
// missing translation degrades to English rather than failing.
package i18n

var phrases = map[string]string{
	"Activity":    "Activity",
	"Category":    "Category",
	"Tags":        "Tags",
	"Description": "Description",
	"Start":       "Start",
	"End":         "End",
	"Duration":    "Duration",
	"Unsorted":    "Unsorted",
	"Total":       "Total",
	"No activity": "No activity",
}

// T looks up the translation for a literal phrase key.
func T(key string) string {
	if s, ok := phrases[key]; ok {
		return s
	}
	return key
}
