package report

import (
	"encoding/csv"
	"io"

	"github.com/devtoolhub/devtools/internal/model"
)

// CSVWriter outputs reports as CSV for spreadsheets and downstream
// tooling. Tabular records are written as-is; reports that only carry
// fields fall back to name,value rows so every report stays exportable.
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report as CSV.
func (w *CSVWriter) Write(report *model.Report) (int, error) {
	counter := &countingWriter{w: w.output}
	cw := csv.NewWriter(counter)

	if report.HasRecords() {
		if err := cw.Write(report.Columns); err != nil {
			return counter.n, err
		}
		if err := cw.WriteAll(report.Records); err != nil {
			return counter.n, err
		}
		return counter.n, nil
	}

	if err := cw.Write([]string{"name", "value"}); err != nil {
		return counter.n, err
	}
	for _, f := range report.Fields {
		if err := cw.Write([]string{f.Name, f.Value}); err != nil {
			return counter.n, err
		}
	}
	cw.Flush()

	return counter.n, cw.Error()
}
