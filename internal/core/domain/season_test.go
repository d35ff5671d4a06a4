package domain_test

import (
	"testing"
	"time"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSeasonOf(t *testing.T) {
	cases := []struct {
		month    time.Month
		expected domain.Season
	}{
		{time.January, domain.SeasonWinter},
		{time.February, domain.SeasonWinter},
		{time.March, domain.SeasonSpring},
		{time.April, domain.SeasonSpring},
		{time.May, domain.SeasonSpring},
		{time.June, domain.SeasonSummer},
		{time.July, domain.SeasonSummer},
		{time.August, domain.SeasonSummer},
		{time.September, domain.SeasonAutumn},
		{time.October, domain.SeasonAutumn},
		{time.November, domain.SeasonAutumn},
		{time.December, domain.SeasonWinter},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, domain.SeasonOf(tc.month), "month %s", tc.month)
	}
}

func TestSeasonDurationMonths(t *testing.T) {
	assert.Equal(t, 4, domain.SeasonDurationMonths(domain.SeasonSummer))
	assert.Equal(t, 5, domain.SeasonDurationMonths(domain.SeasonAutumn))
	assert.Equal(t, 8, domain.SeasonDurationMonths(domain.SeasonWinter))
	assert.Equal(t, 6, domain.SeasonDurationMonths(domain.SeasonSpring))
}

func TestDueDateFor(t *testing.T) {
	// Autumn reservation: 5 months of storage.
	createdAt := time.Date(2025, time.October, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC), domain.DueDateFor(createdAt))

	// Winter reservation created in January: 8 months.
	createdAt = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC), domain.DueDateFor(createdAt))

	// Month-end overflow normalizes the way time.AddDate does:
	// Jan 31 + 8 months lands on Oct 1, not Sep 31.
	createdAt = time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), domain.DueDateFor(createdAt))
}

func TestReservationDueDate(t *testing.T) {
	r := domain.Reservation{
		AuditFields: domain.AuditFields{
			CreatedAt: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	// Summer season: 4 months.
	assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), r.DueDate())
}
