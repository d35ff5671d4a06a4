package domain_test

import (
	"testing"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRequiredDeposit(t *testing.T) {
	rate := decimal.NewFromInt(100)
	assert.True(t, decimal.NewFromInt(1000).Equal(domain.RequiredDeposit(10, rate)))
	assert.True(t, decimal.Zero.Equal(domain.RequiredDeposit(0, rate)))

	// Fractional rates keep full precision.
	rate = decimal.RequireFromString("12.50")
	assert.True(t, decimal.RequireFromString("37.50").Equal(domain.RequiredDeposit(3, rate)))
}

func TestPaymentStatusFor(t *testing.T) {
	required := decimal.NewFromInt(1000)

	assert.Equal(t, domain.PaymentEmpty, domain.PaymentStatusFor(required, decimal.Zero))
	assert.Equal(t, domain.PaymentPartial, domain.PaymentStatusFor(required, decimal.NewFromInt(400)))
	assert.Equal(t, domain.PaymentPaid, domain.PaymentStatusFor(required, decimal.NewFromInt(1000)))

	// Overpayment still reads as PAID.
	assert.Equal(t, domain.PaymentPaid, domain.PaymentStatusFor(required, decimal.NewFromInt(1200)))
}

func TestDepositRemaining(t *testing.T) {
	r := domain.Reservation{
		DepositRequired: decimal.NewFromInt(1000),
		DepositPaid:     decimal.NewFromInt(400),
	}
	assert.True(t, decimal.NewFromInt(600).Equal(r.DepositRemaining()))
}
