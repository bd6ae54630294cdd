/*
Package sequences provides query helpers over iter.Seq values.

Every helper enumerates its input at most once and stops as soon as the
answer is known, so single-pass and unbounded sequences are safe to pass.
A nil sequence is treated as empty. No helper mutates its input.

	sequences.IsEmpty(slices.Values(xs))
	sequences.HasMultiple(maps.Keys(m))
	sequences.ContainsIgnoreCase(slices.Values(names), "ADA")

ToTable turns a sequence of tabular.Record values into a tabular.Table whose
columns come from the first record:

	tbl, err := sequences.ToTable(slices.Values(records))
	if err != nil {
		return err
	}
	if tbl == nil {
		// no records, no table
	}

Records are placed positionally. A record whose keys differ from the columns
is still added in its own key order and a warning is logged through the
core logger; keep key order consistent across records when column alignment
matters.
*/
package sequences
