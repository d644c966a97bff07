package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/devtoolhub/devtools/internal/model"
)

// SQLWriter outputs reports as SQL: a CREATE TABLE IF NOT EXISTS
// statement followed by one INSERT per row, ready to pipe into sqlite3
// or psql. Tabular records map onto one column per report column;
// field-only reports fall back to a name/value table.
type SQLWriter struct {
	baseWriter
}

// NewSQLWriter creates an SQLWriter that outputs to the given writer.
func NewSQLWriter(output io.Writer) *SQLWriter {
	return &SQLWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report as SQL statements.
func (w *SQLWriter) Write(report *model.Report) (int, error) {
	table := "devtools_" + sanitizeIdentifier(report.Tool)

	columns := report.Columns
	rows := report.Records
	if !report.HasRecords() {
		columns = []string{"name", "value"}
		rows = make([][]string, 0, len(report.Fields))
		for _, f := range report.Fields {
			rows = append(rows, []string{f.Name, f.Value})
		}
	}

	sanitized := make([]string, 0, len(columns))
	for _, c := range columns {
		sanitized = append(sanitized, sanitizeIdentifier(c))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "CREATE TABLE IF NOT EXISTS %s (%s TEXT);\n",
		table, strings.Join(sanitized, " TEXT, "))

	for _, row := range rows {
		values := make([]string, 0, len(row))
		for _, v := range row {
			values = append(values, quoteLiteral(v))
		}
		fmt.Fprintf(&sb, "INSERT INTO %s (%s) VALUES (%s);\n",
			table, strings.Join(sanitized, ", "), strings.Join(values, ", "))
	}

	return io.WriteString(w.output, sb.String())
}

// sanitizeIdentifier reduces a name to a safe SQL identifier: lowercase
// letters, digits and underscores, never starting with a digit.
func sanitizeIdentifier(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}

	out := sb.String()
	if out == "" || (out[0] >= '0' && out[0] <= '9') {
		out = "c_" + out
	}
	return out
}

// quoteLiteral wraps a value as a single-quoted SQL string literal,
// doubling embedded quotes.
func quoteLiteral(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}
