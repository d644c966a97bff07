package report

import (
	"io"

	"github.com/nao1215/markdown"

	"github.com/devtoolhub/devtools/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	counter := &countingWriter{w: w.output}
	md := markdown.NewMarkdown(counter)

	md.H1("devtools " + report.Tool + " report")
	md.PlainText("")

	rows := [][]string{
		{"Tool", report.Tool},
		{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
	}
	if report.Input != "" {
		rows = append(rows, []string{"Input", "`" + report.Input + "`"})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(report.Fields) > 0 {
		md.H2("Results")
		md.PlainText("")

		fieldRows := make([][]string, 0, len(report.Fields))
		for _, f := range report.Fields {
			fieldRows = append(fieldRows, []string{f.Name, "`" + f.Value + "`"})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Name", "Value"},
			Rows:   fieldRows,
		})
		md.PlainText("")
	}

	if report.HasRecords() {
		md.H2("Records")
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: report.Columns,
			Rows:   report.Records,
		})
		md.PlainText("")
	}

	if err := md.Build(); err != nil {
		return counter.n, err
	}
	return counter.n, nil
}
