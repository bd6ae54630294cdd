/*
Package tabular provides loosely-typed records and the row/column tables built
from them.

# Records

A Record is a set of named fields without a static schema. Fields keep the
order in which they were first set, and that order is what a table uses to
place values into columns:

	rec := tabular.NewRecord(
		tabular.F("id", 1),
		tabular.F("name", "ada"),
	)
	rec.Set("active", true)

	rec.Keys()   // [id name active]
	rec.Values() // [1 ada true]

Records decoded from JSON keep the document's top-level key order:

	rec, err := tabular.ParseRecord([]byte(`{"b":1,"a":2}`))
	rec.Keys() // [b a]

# Tables

A Table has ordered column names and rows holding one value per column.
Rows are positional: a value's column is decided by its index, never by name.

	tbl := tabular.New("id", "name")
	_ = tbl.AddRow(1, "ada")
	_ = tbl.AddRow(2) // missing trailing cells are nil

	v, _ := tbl.Value(0, "name") // "ada"

Use sequences.ToTable to build a table from a sequence of records.
*/
package tabular
