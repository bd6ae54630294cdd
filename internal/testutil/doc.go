// Package testutil provides sequences that record how they are consumed:
// Probe counts pulled elements and passes, Once fails a test on a second
// enumeration, and Endless never stops on its own. Tests use them to check
// that helpers stop early and read their input once.
package testutil
