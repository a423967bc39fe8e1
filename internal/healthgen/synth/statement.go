package synth

import (
	"fmt"
	"strings"
)

// Insert is a multi-row INSERT kept as columns plus value tuples until Render.
type Insert struct {
	Table   string
	Columns []string
	rows    [][]Value
}

func NewInsert(table string, columns ...string) *Insert {
	return &Insert{Table: table, Columns: columns}
}

// Add appends one row. A row of the wrong width is a programming error.
func (in *Insert) Add(values ...Value) {
	if len(values) != len(in.Columns) {
		panic(fmt.Sprintf("synth: %s row has %d values for %d columns", in.Table, len(values), len(in.Columns)))
	}
	in.rows = append(in.rows, values)
}

func (in *Insert) Len() int { return len(in.rows) }

// Render returns "INSERT INTO t (cols) VALUES\n(...),\n(...);\n", or "" with no rows.
func (in *Insert) Render() string {
	if len(in.rows) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES\n", in.Table, strings.Join(in.Columns, ", "))
	for i, row := range in.rows {
		b.WriteByte('(')
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(v.Literal())
		}
		b.WriteByte(')')
		if i < len(in.rows)-1 {
			b.WriteString(",\n")
		}
	}
	b.WriteString(";\n")
	return b.String()
}

const rule = "-- ============================================================================\n"

// banner writes a boxed section comment followed by a blank line.
func banner(b *strings.Builder, title string) {
	b.WriteString(rule)
	b.WriteString("-- " + title + "\n")
	b.WriteString(rule)
	b.WriteByte('\n')
}
