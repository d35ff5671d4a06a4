// Package numbering formats sequential document numbers from per-tenant
// counters. Counter increments themselves happen atomically in the database;
// this package only handles presentation.
package numbering

import "fmt"

// Well-known document prefixes.
const (
	InvoicePrefix   = "FAC"
	ReceptionPrefix = "REC"
	LoanPrefix      = "BON"
)

// Format renders PREFIX-YEAR-NNNN with the sequence zero-padded to 4 digits.
// Sequences beyond 9999 widen naturally.
func Format(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, seq)
}

// FormatShort renders PREFIX-YEAR-NNN with 3-digit padding, used for
// crate-loan tickets and partial-payment receipts.
func FormatShort(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, seq)
}
