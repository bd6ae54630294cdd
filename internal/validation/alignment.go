package validation

import "fmt"

// Misalignment describes one way a record's keys differ from the columns.
type Misalignment struct {
	Position int    // key position, -1 for whole-record issues
	Column   string // expected column name at Position
	Key      string // key found at Position
	Message  string
}

func (m Misalignment) String() string {
	if m.Position < 0 {
		return m.Message
	}
	return fmt.Sprintf("position %d: %s", m.Position, m.Message)
}

// Alignment compares keys positionally against columns and returns every
// difference. A nil result means the record lines up with the columns.
func Alignment(columns, keys []string) []Misalignment {
	var out []Misalignment
	if len(keys) != len(columns) {
		out = append(out, Misalignment{
			Position: -1,
			Message:  fmt.Sprintf("record has %d fields, table has %d columns", len(keys), len(columns)),
		})
	}
	n := min(len(keys), len(columns))
	for i := 0; i < n; i++ {
		if keys[i] != columns[i] {
			out = append(out, Misalignment{
				Position: i,
				Column:   columns[i],
				Key:      keys[i],
				Message:  fmt.Sprintf("key %q lands in column %q", keys[i], columns[i]),
			})
		}
	}
	return out
}
