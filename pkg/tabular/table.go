package tabular

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/collext/go-sdk/pkg/core"
)

// Table is a rectangular structure with named columns and one row per
// record. Each row holds one value per column, matched by position.
type Table struct {
	Columns []string
	Rows    [][]any
}

// New creates an empty table with the given columns.
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// AddRow appends a row. Missing trailing values are stored as nil; a row
// with more values than the table has columns is rejected.
func (t *Table) AddRow(values ...any) error {
	if len(values) > len(t.Columns) {
		return &core.CollectionError{
			Op:    "add_row",
			Index: len(t.Rows),
			Err: fmt.Errorf("%w: row has %d values, table has %d columns",
				core.ErrInvalidArgument, len(values), len(t.Columns)),
		}
	}

	row := make([]any, len(t.Columns))
	copy(row, values)
	t.Rows = append(t.Rows, row)
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Value returns the cell at the given row and column name.
func (t *Table) Value(row int, column string) (any, bool) {
	col := t.ColumnIndex(column)
	if col < 0 || row < 0 || row >= len(t.Rows) {
		return nil, false
	}
	return t.Rows[row][col], true
}

// Records iterates over the rows as records keyed by column name.
func (t *Table) Records() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for _, row := range t.Rows {
			rec := NewRecord()
			for i, c := range t.Columns {
				var v any
				if i < len(row) {
					v = row[i]
				}
				rec.Set(c, v)
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// MarshalJSON writes the table as {"columns": [...], "rows": [[...], ...]}.
func (t *Table) MarshalJSON() ([]byte, error) {
	columns := t.Columns
	if columns == nil {
		columns = []string{}
	}
	rows := t.Rows
	if rows == nil {
		rows = [][]any{}
	}
	return json.Marshal(struct {
		Columns []string `json:"columns"`
		Rows    [][]any  `json:"rows"`
	}{columns, rows})
}
