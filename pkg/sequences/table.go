package sequences

import (
	"fmt"
	"iter"
	"slices"

	"github.com/collext/go-sdk/internal/validation"
	"github.com/collext/go-sdk/pkg/core"
	"github.com/collext/go-sdk/pkg/tabular"
	"github.com/sirupsen/logrus"
)

// ToTable converts records into a table. Columns are the first record's
// keys in its order; every record, the first included, adds one row of its
// values in its own key order. A nil record adds a row of nils. A nil first
// record yields a table with no columns, so any later record that has fields
// fails with core.ErrInvalidArgument.
//
// A nil or empty sequence returns a nil table and a nil error. The input is
// enumerated exactly once. A record with more fields than there are columns
// fails with an error wrapping core.ErrInvalidArgument.
func ToTable(records iter.Seq[*tabular.Record]) (*tabular.Table, error) {
	if records == nil {
		return nil, nil
	}
	all := slices.Collect(records)
	if len(all) == 0 {
		return nil, nil
	}

	columns := all[0].Keys()
	tbl := tabular.New(columns...)
	log := core.OpLogger("to_table")

	for i, rec := range all {
		if issues := validation.Alignment(columns, rec.Keys()); len(issues) > 0 {
			log.WithFields(logrus.Fields{
				"record": i,
				"issues": len(issues),
			}).Warnf("record does not line up with table columns: %s", issues[0])
		}
		if err := tbl.AddRow(rec.Values()...); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	log.WithFields(logrus.Fields{
		"columns": len(columns),
		"rows":    tbl.Len(),
	}).Debug("table built")
	return tbl, nil
}
