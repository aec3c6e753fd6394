package weather

import "time"

// DetermineSeason maps a month to its northern-hemisphere meteorological season.
func DetermineSeason(month time.Month) Season {
	switch month {
	case time.December, time.January, time.February:
		return SeasonWinter
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	default:
		return SeasonAutumn
	}
}

// SeasonOf returns the season of the calendar month of date.
func SeasonOf(date time.Time) Season {
	return DetermineSeason(date.Month())
}
