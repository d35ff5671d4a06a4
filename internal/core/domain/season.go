package domain

import "time"

// Season groups calendar months into the storage campaigns the due-date
// schedule is keyed on.
type Season string

const (
	SeasonSummer Season = "SUMMER" // Jun-Aug
	SeasonAutumn Season = "AUTUMN" // Sep-Nov
	SeasonWinter Season = "WINTER" // Dec-Feb
	SeasonSpring Season = "SPRING" // Mar-May
)

// seasonDurations maps each season to the storage duration, in months,
// granted to reservations created during it.
var seasonDurations = map[Season]int{
	SeasonSummer: 4,
	SeasonAutumn: 5,
	SeasonWinter: 8,
	SeasonSpring: 6,
}

// SeasonOf returns the season the given month falls into.
func SeasonOf(month time.Month) Season {
	switch month {
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonAutumn
	case time.December, time.January, time.February:
		return SeasonWinter
	default:
		return SeasonSpring
	}
}

// SeasonDurationMonths returns the storage duration in months for a season.
func SeasonDurationMonths(s Season) int {
	return seasonDurations[s]
}

// DueDateFor derives a reservation due date from its creation date: the
// creation month selects a season, and the season's duration is added to the
// creation date. Month-end overflow follows time.AddDate normalization.
func DueDateFor(createdAt time.Time) time.Time {
	return createdAt.AddDate(0, SeasonDurationMonths(SeasonOf(createdAt.Month())), 0)
}
