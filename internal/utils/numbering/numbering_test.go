package numbering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "FAC-2026-0001", Format(InvoicePrefix, 2026, 1))
	assert.Equal(t, "FAC-2026-0042", Format(InvoicePrefix, 2026, 42))
	assert.Equal(t, "REC-2025-1234", Format(ReceptionPrefix, 2025, 1234))

	// Sequences beyond the pad width widen, they never truncate.
	assert.Equal(t, "FAC-2026-10000", Format(InvoicePrefix, 2026, 10000))
}

func TestFormatShort(t *testing.T) {
	assert.Equal(t, "BON-2026-001", FormatShort(LoanPrefix, 2026, 1))
	assert.Equal(t, "BON-2026-099", FormatShort(LoanPrefix, 2026, 99))
	assert.Equal(t, "BON-2026-1000", FormatShort(LoanPrefix, 2026, 1000))
}
