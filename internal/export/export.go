// Package export renders an already-resolved fact list in machine-readable
// formats. Renderers only receive the facts and the resolved range; range
// resolution and retrieval happen upstream.
package export

import (
	"encoding/xml"
	"fmt"
	"html/template"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/in0ni/hamster/internal/model"
	"github.com/in0ni/hamster/internal/timecalc"
)

// Format identifies one of the known export renderers.
type Format int

const (
	TSV Format = iota
	XML
	ICal
	HTML
)

var formatNames = map[Format]string{
	TSV:  "tsv",
	XML:  "xml",
	ICal: "ical",
	HTML: "html",
}

type renderFunc func(w io.Writer, facts []model.Fact, r timecalc.Range, now time.Time) error

var renderers = map[Format]renderFunc{
	TSV:  renderTSV,
	XML:  renderXML,
	ICal: renderICal,
	HTML: renderHTML,
}

// ParseFormat maps a format name to its Format, failing with the list of
// known names for anything else.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown export format %q (expected one of %s)", name, strings.Join(Names(), ", "))
}

// Names returns the known format names, sorted.
func Names() []string {
	names := make([]string, 0, len(formatNames))
	for _, n := range formatNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Render writes the facts in the given format.
func Render(f Format, w io.Writer, facts []model.Fact, r timecalc.Range, now time.Time) error {
	render, ok := renderers[f]
	if !ok {
		return fmt.Errorf("no renderer for format %d", int(f))
	}
	return render(w, facts, r, now)
}

// tsvEscape flattens field-breaking characters so a fact never spans cells.
func tsvEscape(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
}

func renderTSV(w io.Writer, facts []model.Fact, _ timecalc.Range, now time.Time) error {
	if _, err := fmt.Fprintln(w, "activity\tcategory\ttags\tdescription\tstart\tend\tduration_minutes"); err != nil {
		return err
	}
	for _, f := range facts {
		end := ""
		if f.End != nil {
			end = f.End.Format(time.RFC3339)
		}
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			tsvEscape(f.Activity),
			tsvEscape(f.Category),
			tsvEscape(strings.Join(f.Tags, " ")),
			tsvEscape(f.Description),
			f.Start.Format(time.RFC3339),
			end,
			int64(f.Delta(now)/time.Minute),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

type xmlFact struct {
	Activity    string   `xml:"activity"`
	Category    string   `xml:"category"`
	Tags        []string `xml:"tags>tag"`
	Description string   `xml:"description,omitempty"`
	Start       string   `xml:"start"`
	End         string   `xml:"end,omitempty"`
	Minutes     int64    `xml:"duration_minutes"`
}

type xmlReport struct {
	XMLName xml.Name  `xml:"facts"`
	Start   string    `xml:"start,attr"`
	End     string    `xml:"end,attr"`
	Facts   []xmlFact `xml:"fact"`
}

func renderXML(w io.Writer, facts []model.Fact, r timecalc.Range, now time.Time) error {
	doc := xmlReport{
		Start: r.Start.Format("2006-01-02"),
		End:   r.End.Format("2006-01-02"),
	}
	for _, f := range facts {
		xf := xmlFact{
			Activity:    f.Activity,
			Category:    f.Category,
			Tags:        f.Tags,
			Description: f.Description,
			Start:       f.Start.Format(time.RFC3339),
			Minutes:     int64(f.Delta(now) / time.Minute),
		}
		if f.End != nil {
			xf.End = f.End.Format(time.RFC3339)
		}
		doc.Facts = append(doc.Facts, xf)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

const icalStamp = "20060102T150405Z"

// icalEscape escapes text per RFC 5545 section 3.3.11.
func icalEscape(s string) string {
	return strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	).Replace(s)
}

func renderICal(w io.Writer, facts []model.Fact, _ timecalc.Range, now time.Time) error {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//hamster//EN\r\n")
	for _, f := range facts {
		end := now
		if f.End != nil {
			end = *f.End
		}
		b.WriteString("BEGIN:VEVENT\r\n")
		fmt.Fprintf(&b, "UID:%s\r\n", f.ID)
		fmt.Fprintf(&b, "DTSTART:%s\r\n", f.Start.UTC().Format(icalStamp))
		fmt.Fprintf(&b, "DTEND:%s\r\n", end.UTC().Format(icalStamp))
		fmt.Fprintf(&b, "SUMMARY:%s\r\n", icalEscape(f.String()))
		if f.Category != "" {
			fmt.Fprintf(&b, "CATEGORIES:%s\r\n", icalEscape(f.Category))
		}
		if f.Description != "" {
			fmt.Fprintf(&b, "DESCRIPTION:%s\r\n", icalEscape(f.Description))
		}
		b.WriteString("END:VEVENT\r\n")
	}
	b.WriteString("END:VCALENDAR\r\n")
	_, err := io.WriteString(w, b.String())
	return err
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Activity report {{.Start}} – {{.End}}</title></head>
<body>
<h1>Activity report {{.Start}} – {{.End}}</h1>
<table border="1">
<tr><th>Start</th><th>End</th><th>Duration</th><th>Activity</th><th>Category</th><th>Tags</th><th>Description</th></tr>
{{range .Rows -}}
<tr><td>{{.Start}}</td><td>{{.End}}</td><td>{{.Duration}}</td><td>{{.Activity}}</td><td>{{.Category}}</td><td>{{.Tags}}</td><td>{{.Description}}</td></tr>
{{end -}}
</table>
</body>
</html>
`))

type htmlRow struct {
	Start, End, Duration, Activity, Category, Tags, Description string
}

func renderHTML(w io.Writer, facts []model.Fact, r timecalc.Range, now time.Time) error {
	data := struct {
		Start, End string
		Rows       []htmlRow
	}{
		Start: r.Start.Format("2006-01-02"),
		End:   r.End.Format("2006-01-02"),
	}
	for _, f := range facts {
		row := htmlRow{
			Start:       f.Start.Format("2006-01-02 15:04"),
			Duration:    timecalc.FormatDuration(f.Delta(now)),
			Activity:    f.Activity,
			Category:    f.Category,
			Tags:        strings.Join(f.Tags, " "),
			Description: f.Description,
		}
		if f.End != nil {
			row.End = f.End.Format("2006-01-02 15:04")
		}
		data.Rows = append(data.Rows, row)
	}
	return htmlTemplate.Execute(w, data)
}
