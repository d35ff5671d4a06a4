package domain_test

import (
	"testing"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCashBalance(t *testing.T) {
	balance := domain.CashBalance(
		decimal.NewFromInt(500),
		decimal.NewFromInt(1000),
		decimal.NewFromInt(200),
	)
	assert.True(t, balance.Equal(decimal.NewFromInt(1300)))
}

func TestDayClosureReconcile(t *testing.T) {
	c := domain.DayClosure{
		OpeningCash: decimal.NewFromInt(500),
		CountedCash: decimal.NewFromInt(1250),
	}
	c.Reconcile(decimal.NewFromInt(1000), decimal.NewFromInt(200))

	assert.True(t, c.TotalIn.Equal(decimal.NewFromInt(1000)))
	assert.True(t, c.TotalOut.Equal(decimal.NewFromInt(200)))
	assert.True(t, c.ExpectedCash.Equal(decimal.NewFromInt(1300)))
	// The operator counted 50 less than expected.
	assert.True(t, c.Variance.Equal(decimal.NewFromInt(-50)))
}

func TestDayClosureReconcileEmptyDay(t *testing.T) {
	c := domain.DayClosure{
		OpeningCash: decimal.NewFromInt(300),
		CountedCash: decimal.NewFromInt(300),
	}
	c.Reconcile(decimal.Zero, decimal.Zero)

	assert.True(t, c.ExpectedCash.Equal(decimal.NewFromInt(300)))
	assert.True(t, c.Variance.IsZero())
}
