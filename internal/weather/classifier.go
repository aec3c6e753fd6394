package weather

import "time"

// ForecastWindowDays is how many days past today the live forecast covers.
const ForecastWindowDays = 15

// Horizon says which source answers for a date.
type Horizon int

const (
	// NearTerm dates are inside the forecast window and served by the ForecastSource.
	NearTerm Horizon = iota
	// FarTerm dates are everything else and served by the PredictionSource.
	FarTerm
)

func (h Horizon) String() string {
	if h == NearTerm {
		return "nearTerm"
	}
	return "farTerm"
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ForecastWindow returns the inclusive [from, to] day bounds of the forecast
// window evaluated at now, in now's location.
func ForecastWindow(now time.Time) (from, to time.Time) {
	from = StartOfDay(now, now.Location())
	to = from.AddDate(0, 0, ForecastWindowDays)
	return from, to
}

// Classify reports whether target falls in the forecast window evaluated at now.
// Time of day on either argument does not matter.
func Classify(target, now time.Time) Horizon {
	from, to := ForecastWindow(now)
	day := StartOfDay(target, now.Location())
	if day.Before(from) || day.After(to) {
		return FarTerm
	}
	return NearTerm
}
