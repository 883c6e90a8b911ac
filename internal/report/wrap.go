package report

import "strings"

// Wrap greedily word-wraps text into lines shorter than width. Words are runs
// of non-whitespace; a single word at or over the width is emitted verbatim
// on its own line. Empty input yields no lines.
func Wrap(text string, width int) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		if len(line)+1+len(word) < width {
			if line == "" {
				line = word
			} else {
				line += " " + word
			}
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
