package tabular

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Field is a single named value in a Record.
type Field struct {
	Name  string
	Value any
}

// F is shorthand for building a Field.
func F(name string, value any) Field {
	return Field{Name: name, Value: value}
}

// Record is a dynamically-keyed set of fields kept in insertion order.
// The zero value is an empty record ready to use.
type Record struct {
	fields *linkedhashmap.Map
}

// NewRecord creates a record holding fields in the given order.
func NewRecord(fields ...Field) *Record {
	r := &Record{fields: linkedhashmap.New()}
	for _, f := range fields {
		r.fields.Put(f.Name, f.Value)
	}
	return r
}

// Set adds a field or updates an existing one. An existing field keeps its
// position. Unlike the read methods, Set needs a non-nil receiver and panics
// on a nil *Record.
func (r *Record) Set(name string, value any) *Record {
	if r.fields == nil {
		r.fields = linkedhashmap.New()
	}
	r.fields.Put(name, value)
	return r
}

// Get returns the value of a field and whether it exists.
func (r *Record) Get(name string) (any, bool) {
	if r == nil || r.fields == nil {
		return nil, false
	}
	return r.fields.Get(name)
}

// Delete removes a field. Later fields move up one position.
func (r *Record) Delete(name string) {
	if r == nil || r.fields == nil {
		return
	}
	r.fields.Remove(name)
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil || r.fields == nil {
		return 0
	}
	return r.fields.Size()
}

// Keys returns the field names in order.
func (r *Record) Keys() []string {
	if r.Len() == 0 {
		return nil
	}
	keys := make([]string, 0, r.fields.Size())
	for _, k := range r.fields.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

// Values returns the field values in key order.
func (r *Record) Values() []any {
	if r.Len() == 0 {
		return nil
	}
	return r.fields.Values()
}

// Fields iterates over name/value pairs in order.
func (r *Record) Fields() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if r.Len() == 0 {
			return
		}
		it := r.fields.Iterator()
		for it.Next() {
			if !yield(it.Key().(string), it.Value()) {
				return
			}
		}
	}
}

func (r *Record) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for k, v := range r.Fields() {
		if !first {
			buf.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&buf, "%s: %v", k, v)
	}
	buf.WriteByte('}')
	return buf.String()
}

// MarshalJSON writes the record as a JSON object with keys in field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for k, v := range r.Fields() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the record's fields with the members of a JSON
// object, in document order. Nested objects decode to map[string]any and do
// not keep their order. A JSON null leaves the record unchanged.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("decode record: expected JSON object, got %v", tok)
	}

	fields := linkedhashmap.New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode record: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("decode record: expected field name, got %v", tok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode record field %q: %w", key, err)
		}
		fields.Put(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}

	r.fields = fields
	return nil
}

// ParseRecord decodes a JSON object into a Record.
func ParseRecord(data []byte) (*Record, error) {
	r := &Record{}
	if err := r.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return r, nil
}
