package trip

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/i474232898/weather-flight/internal/catalog"
	"github.com/i474232898/weather-flight/internal/weather"
)

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidTrip      = errors.New("invalid trip")
	ErrActivityMismatch = errors.New("activity does not belong to trip destination")
	ErrItemNotFound     = errors.New("agenda item not found")
)

// DateRange is an inclusive [Start, End] span. It travels as RFC3339 strings.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange validates and returns a range.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate rejects zero bounds and ranges that end before they start.
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidDateRange)
	}
	if r.End.Before(r.Start) {
		return fmt.Errorf("%w: end %s is before start %s", ErrInvalidDateRange,
			r.End.Format(time.RFC3339), r.Start.Format(time.RFC3339))
	}
	return nil
}

// Duration returns End - Start.
func (r DateRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Contains reports whether t lies within the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

type dateRangeJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r DateRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(dateRangeJSON{
		Start: r.Start.Format(time.RFC3339),
		End:   r.End.Format(time.RFC3339),
	})
}

func (r *DateRange) UnmarshalJSON(data []byte) error {
	var raw dateRangeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, err := time.Parse(time.RFC3339, raw.Start)
	if err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidDateRange, err)
	}
	end, err := time.Parse(time.RFC3339, raw.End)
	if err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidDateRange, err)
	}
	r.Start, r.End = start, end
	return nil
}

// AgendaItem is one planned activity on a trip.
type AgendaItem struct {
	ID       string           `json:"id"`
	Activity catalog.Activity `json:"activity"`
	Dates    DateRange        `json:"dates"`

	// Weather is the last estimate fetched for the start day, if any.
	Weather          *weather.WeatherEstimate `json:"weather,omitempty"`
	WeatherUpdatedAt *time.Time               `json:"weatherUpdatedAt,omitempty"`
}

// Trip is a named journey to one destination with its agenda.
type Trip struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Destination weather.Destination `json:"destination"`
	Agenda      []AgendaItem        `json:"agenda"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// EndsAt returns the latest agenda end, or CreatedAt for an empty agenda.
func (t Trip) EndsAt() time.Time {
	end := t.CreatedAt
	for _, item := range t.Agenda {
		if item.Dates.End.After(end) {
			end = item.Dates.End
		}
	}
	return end
}

// Clone returns a deep copy safe to hand out of a store.
func (t Trip) Clone() Trip {
	out := t
	out.Agenda = make([]AgendaItem, len(t.Agenda))
	for i, item := range t.Agenda {
		if item.Weather != nil {
			w := *item.Weather
			item.Weather = &w
		}
		if item.WeatherUpdatedAt != nil {
			ts := *item.WeatherUpdatedAt
			item.WeatherUpdatedAt = &ts
		}
		out.Agenda[i] = item
	}
	return out
}

// Store is the contract the in-memory store (and any future persistent store) must satisfy.
type Store interface {
	Save(t Trip) error
	Get(id string) (Trip, error)
	List() []Trip
	Delete(id string) error
	// Update applies fn to the stored trip atomically and saves the result.
	Update(id string, fn func(*Trip) error) (Trip, error)
	// DeleteEndedBefore removes trips whose EndsAt is before cutoff.
	DeleteEndedBefore(cutoff time.Time) int
}
