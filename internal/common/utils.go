package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/i474232898/weather-flight/internal/weather"
)

// ParseDate parses a yyyy-MM-dd calendar day as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(weather.DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q; use yyyy-MM-dd", s)
	}
	return d, nil
}

// FormatDate renders t as yyyy-MM-dd.
func FormatDate(t time.Time) string {
	return t.Format(weather.DateLayout)
}
