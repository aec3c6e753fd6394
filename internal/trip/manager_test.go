package trip_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/i474232898/weather-flight/internal/catalog"
	"github.com/i474232898/weather-flight/internal/store"
	"github.com/i474232898/weather-flight/internal/trip"
	"github.com/i474232898/weather-flight/internal/weather"
)

type stubResolver struct {
	mu    sync.Mutex
	calls []time.Time
	err   error
}

func (s *stubResolver) Resolve(ctx context.Context, dest weather.Destination, date time.Time) (weather.WeatherEstimate, error) {
	s.mu.Lock()
	s.calls = append(s.calls, date)
	s.mu.Unlock()
	if s.err != nil {
		return weather.WeatherEstimate{}, s.err
	}
	return weather.FromPrediction(date, weather.Prediction{TemperatureC: 20}), nil
}

var now = time.Date(2025, time.April, 1, 8, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*trip.Manager, *catalog.Catalog, *stubResolver, *clockwork.FakeClock) {
	t.Helper()
	cat := catalog.Default()
	res := &stubResolver{}
	clock := clockwork.NewFakeClockAt(now)
	return trip.NewManager(store.NewMemoryStore(0), cat, res, clock), cat, res, clock
}

func dates(t *testing.T, startOffset, days int) trip.DateRange {
	t.Helper()
	start := now.AddDate(0, 0, startOffset)
	r, err := trip.NewDateRange(start, start.AddDate(0, 0, days))
	if err != nil {
		t.Fatalf("date range: %v", err)
	}
	return r
}

func TestCreateAndList(t *testing.T) {
	m, cat, _, clock := setup(t)
	berga, _ := cat.DestinationByName("Berga")
	naco, _ := cat.DestinationByName("Naco")

	first, err := m.Create(" Pyrenees ", berga)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Name != "Pyrenees" || first.ID == "" || !first.CreatedAt.Equal(now) {
		t.Fatalf("unexpected trip %+v", first)
	}
	clock.Advance(time.Minute)
	if _, err := m.Create("Border", naco); err != nil {
		t.Fatalf("create: %v", err)
	}

	trips := m.List()
	if len(trips) != 2 || trips[0].ID != first.ID {
		t.Fatalf("expected oldest trip first, got %+v", trips)
	}

	if _, err := m.Create("", berga); !errors.Is(err, trip.ErrInvalidTrip) {
		t.Fatalf("expected ErrInvalidTrip, got %v", err)
	}
	if _, err := m.Create("Nowhere", weather.Destination{}); !errors.Is(err, trip.ErrInvalidTrip) {
		t.Fatalf("expected ErrInvalidTrip, got %v", err)
	}
}

func TestAgendaItems(t *testing.T) {
	m, cat, _, _ := setup(t)
	berga, _ := cat.DestinationByName("Berga")
	tr, _ := m.Create("Pyrenees", berga)

	acts := cat.Activities("Berga")
	later, err := m.AddAgendaItem(tr.ID, acts[0].ID, dates(t, 5, 1))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	earlier, err := m.AddAgendaItem(tr.ID, acts[1].ID, dates(t, 2, 0))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	got, _ := m.Get(tr.ID)
	if len(got.Agenda) != 2 || got.Agenda[0].ID != earlier.ID || got.Agenda[1].ID != later.ID {
		t.Fatalf("agenda must be sorted by start, got %+v", got.Agenda)
	}

	naco := cat.Activities("Naco")[0]
	if _, err := m.AddAgendaItem(tr.ID, naco.ID, dates(t, 1, 1)); !errors.Is(err, trip.ErrActivityMismatch) {
		t.Fatalf("expected ErrActivityMismatch, got %v", err)
	}
	if _, err := m.AddAgendaItem(tr.ID, "nope", dates(t, 1, 1)); !errors.Is(err, catalog.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
	if _, err := m.AddAgendaItem("missing", acts[0].ID, dates(t, 1, 1)); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	backwards := trip.DateRange{Start: now, End: now.Add(-time.Hour)}
	if _, err := m.AddAgendaItem(tr.ID, acts[0].ID, backwards); !errors.Is(err, trip.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}

	if err := m.RemoveAgendaItem(tr.ID, earlier.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := m.RemoveAgendaItem(tr.ID, earlier.ID); !errors.Is(err, trip.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	got, _ = m.Get(tr.ID)
	if len(got.Agenda) != 1 || got.Agenda[0].ID != later.ID {
		t.Fatalf("unexpected agenda %+v", got.Agenda)
	}
}

func TestRefreshAgendaWeatherOnlyNearTerm(t *testing.T) {
	m, cat, res, _ := setup(t)
	xbox, _ := cat.DestinationByName("Xbox")
	tr, _ := m.Create("Yucatán", xbox)
	acts := cat.Activities("Xbox")

	near, _ := m.AddAgendaItem(tr.ID, acts[0].ID, dates(t, 3, 1))
	far, _ := m.AddAgendaItem(tr.ID, acts[1].ID, dates(t, 40, 1))

	stats := m.RefreshAgendaWeather(context.Background())
	if stats.Updated != 1 || stats.Failed != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if len(res.calls) != 1 {
		t.Fatalf("expected a single resolve, got %d", len(res.calls))
	}

	got, _ := m.Get(tr.ID)
	for _, item := range got.Agenda {
		switch item.ID {
		case near.ID:
			if item.Weather == nil || item.WeatherUpdatedAt == nil {
				t.Fatal("near-term item should carry weather")
			}
		case far.ID:
			if item.Weather != nil {
				t.Fatal("far-term item must not be refreshed")
			}
		}
	}
}

func TestRefreshAgendaWeatherCountsFailures(t *testing.T) {
	m, cat, res, _ := setup(t)
	res.err = weather.ErrTransport
	naco, _ := cat.DestinationByName("Naco")
	tr, _ := m.Create("Sonora", naco)
	_, _ = m.AddAgendaItem(tr.ID, cat.Activities("Naco")[0].ID, dates(t, 0, 0))

	stats := m.RefreshAgendaWeather(context.Background())
	if stats.Updated != 0 || stats.Failed != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestPruneEnded(t *testing.T) {
	m, cat, _, clock := setup(t)
	naco, _ := cat.DestinationByName("Naco")
	tr, _ := m.Create("Sonora", naco)
	_, _ = m.AddAgendaItem(tr.ID, cat.Activities("Naco")[0].ID, dates(t, 1, 2))

	if n := m.PruneEnded(0); n != 0 {
		t.Fatalf("zero max age must disable pruning, removed %d", n)
	}
	if n := m.PruneEnded(24 * time.Hour); n != 0 {
		t.Fatalf("trip has not ended yet, removed %d", n)
	}

	clock.Advance(10 * 24 * time.Hour)
	if n := m.PruneEnded(24 * time.Hour); n != 1 {
		t.Fatalf("expected 1 removal, got %d", n)
	}
	if _, err := m.Get(tr.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDateRangeJSON(t *testing.T) {
	var r trip.DateRange
	if err := r.UnmarshalJSON([]byte(`{"start":"2025-04-02T10:00:00Z","end":"2025-04-02T12:00:00Z"}`)); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Duration() != 2*time.Hour || !r.Contains(time.Date(2025, time.April, 2, 11, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected range %+v", r)
	}
	if err := r.UnmarshalJSON([]byte(`{"start":"tomorrow","end":"2025-04-02T12:00:00Z"}`)); !errors.Is(err, trip.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}
