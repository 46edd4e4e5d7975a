package report

import (
	"fmt"
	"strings"
	"time"

	"bikeshare/domain/entities"
)

// Line is one statistic of a report, e.g. "Most common month" = "1".
// A note line is printed as Name alone.
type Line struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	IsNote bool   `json:"is_note"`
}

// Report contains the result of a reporter over a dataset
// + Metadata: city and filters of the dataset used to build the report
// + ReporterType: type of the reporter that generated the report
// + Title: header printed before the statistics
// + Lines: statistics of the report in the order they were added
// + Elapsed: time spent generating the report
type Report struct {
	Metadata     entities.Metadata `json:"metadata"`
	ReporterType string            `json:"reporter_type"`
	Title        string            `json:"title"`
	Lines        []Line            `json:"lines"`
	Elapsed      time.Duration     `json:"elapsed"`
}

func NewReport(metadata entities.Metadata, reporterType string, title string) *Report {
	return &Report{
		Metadata:     metadata,
		ReporterType: reporterType,
		Title:        title,
	}
}

func (r *Report) GetMetadata() entities.Metadata {
	return r.Metadata
}

func (r *Report) AddLine(name string, value any) {
	r.Lines = append(r.Lines, Line{Name: name, Value: fmt.Sprint(value)})
}

// AddNote adds a line without value
func (r *Report) AddNote(note string) {
	r.Lines = append(r.Lines, Line{Name: note, IsNote: true})
}

// AddSection adds a header line followed by one indented line per entry
func (r *Report) AddSection(name string, entries []Line) {
	r.Lines = append(r.Lines, Line{Name: name, IsNote: true})
	for _, entry := range entries {
		r.Lines = append(r.Lines, Line{Name: "  " + entry.Name, Value: entry.Value})
	}
}

// GetValue returns the value of the first line named name
func (r *Report) GetValue(name string) (string, bool) {
	for _, line := range r.Lines {
		if line.Name == name {
			return line.Value, true
		}
	}
	return "", false
}

func (r *Report) SetElapsed(elapsed time.Duration) {
	r.Elapsed = elapsed
}

func (r *Report) String() string {
	var builder strings.Builder
	builder.WriteString("\n" + r.Title + "\n")
	builder.WriteString("(" + r.Metadata.String() + ")\n\n")
	for _, line := range r.Lines {
		if line.IsNote {
			builder.WriteString(line.Name + "\n")
			continue
		}
		builder.WriteString(line.Name + " = " + line.Value + "\n")
	}
	builder.WriteString(fmt.Sprintf("\nThis took %s.\n", r.Elapsed))
	builder.WriteString(Separator + "\n")
	return builder.String()
}

// Separator is printed after every block of output
var Separator = strings.Repeat("-", 40)
