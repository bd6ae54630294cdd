// Package validation provides record alignment checks.
//
// Tables built from loosely-typed records trust each record's own key order.
// This package describes where a record departs from the table's columns so
// callers can report it; it never rejects a record.
//
// This package is internal and should not be imported by external code.
package validation
