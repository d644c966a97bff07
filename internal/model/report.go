package model

import "time"

// Report is the unit of output shared by every tool and consumed by the
// report writers. A report always carries an ordered list of named fields
// (e.g. algorithm -> digest, or the decoded parts of a token). Tools that
// produce batches (UUID generation) additionally fill Columns and Records
// so that tabular writers (CSV, SQL) have something to emit.
//
// Design decision: We use a single report shape for all tools rather than
// one struct per tool. The writers then need no knowledge of individual
// tools, and adding a tool never touches the report package.
type Report struct {
	// Tool is the name of the tool that produced this report
	// (e.g. "hash", "uuid", "jwt").
	Tool string `json:"tool"`

	// Input is a short description of the input that was processed.
	// It may be truncated by the producing command; writers print it as-is.
	Input string `json:"input,omitempty"`

	// GeneratedAt is when the report was produced.
	GeneratedAt time.Time `json:"generated_at"`

	// Fields holds ordered name/value results. Order is preserved by all
	// writers because it mirrors the order the user asked for.
	Fields []Field `json:"fields,omitempty"`

	// Columns names the columns of Records. Empty when the report has no
	// tabular data.
	Columns []string `json:"columns,omitempty"`

	// Records holds tabular rows, one slice per row, aligned with Columns.
	Records [][]string `json:"records,omitempty"`
}

// Field is a single named result within a report.
type Field struct {
	// Name identifies the result (e.g. "sha256", "header", "version").
	Name string `json:"name"`

	// Value is the result rendered as text.
	Value string `json:"value"`
}

// NewReport creates a Report for the given tool and input description,
// stamped with the current time.
func NewReport(tool, input string) *Report {
	return &Report{
		Tool:        tool,
		Input:       input,
		GeneratedAt: time.Now(),
	}
}

// AddField appends a named result, preserving insertion order.
func (r *Report) AddField(name, value string) {
	r.Fields = append(r.Fields, Field{Name: name, Value: value})
}

// SetColumns defines the tabular column names for Records.
func (r *Report) SetColumns(names ...string) {
	r.Columns = names
}

// AddRecord appends a tabular row. The caller is responsible for keeping
// the value count aligned with Columns.
func (r *Report) AddRecord(values ...string) {
	r.Records = append(r.Records, values)
}

// HasRecords reports whether the report carries tabular data.
func (r *Report) HasRecords() bool {
	return len(r.Columns) > 0 && len(r.Records) > 0
}

// Field returns the value of the named field and whether it exists.
func (r *Report) Field(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}
