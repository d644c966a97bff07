package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/devtoolhub/devtools/internal/model"
)

// TextWriter outputs reports as human-readable text for the terminal.
// Fields are printed as aligned name/value lines; tabular records as a
// padded column table.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report as plain text.
func (w *TextWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Tool: %s\n", report.Tool)
	if report.Input != "" {
		fmt.Fprintf(&sb, "Input: %s\n", report.Input)
	}
	fmt.Fprintf(&sb, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	if len(report.Fields) > 0 {
		sb.WriteByte('\n')
		w.writeFields(&sb, report)
	}

	if report.HasRecords() {
		sb.WriteByte('\n')
		w.writeTable(&sb, report)
	}

	return io.WriteString(w.output, sb.String())
}

// writeFields prints name/value pairs with the names padded to a common
// width.
func (w *TextWriter) writeFields(sb *strings.Builder, report *model.Report) {
	width := 0
	for _, f := range report.Fields {
		if len(f.Name) > width {
			width = len(f.Name)
		}
	}

	for _, f := range report.Fields {
		// Multi-line values (decoded JSON) start on their own line.
		if strings.Contains(f.Value, "\n") {
			fmt.Fprintf(sb, "%s:\n%s\n", f.Name, f.Value)
			continue
		}
		fmt.Fprintf(sb, "%-*s  %s\n", width+1, f.Name+":", f.Value)
	}
}

// writeTable prints the records as a padded column table with a header.
func (w *TextWriter) writeTable(sb *strings.Builder, report *model.Report) {
	widths := make([]int, len(report.Columns))
	for i, name := range report.Columns {
		widths[i] = len(name)
	}
	for _, row := range report.Records {
		for i, v := range row {
			if i < len(widths) && len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}

	writeRow := func(values []string) {
		for i, v := range values {
			if i > 0 {
				sb.WriteString("  ")
			}
			if i < len(widths) {
				fmt.Fprintf(sb, "%-*s", widths[i], v)
			} else {
				sb.WriteString(v)
			}
		}
		sb.WriteByte('\n')
	}

	writeRow(report.Columns)

	separators := make([]string, len(report.Columns))
	for i, width := range widths {
		separators[i] = strings.Repeat("-", width)
	}
	writeRow(separators)

	for _, row := range report.Records {
		writeRow(row)
	}
}
