package trip

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/i474232898/weather-flight/internal/catalog"
	"github.com/i474232898/weather-flight/internal/common"
	"github.com/i474232898/weather-flight/internal/log"
	"github.com/i474232898/weather-flight/internal/weather"
)

// WeatherResolver resolves the weather of a destination on a day.
type WeatherResolver interface {
	Resolve(ctx context.Context, dest weather.Destination, date time.Time) (weather.WeatherEstimate, error)
}

// Manager owns trip and agenda bookkeeping on top of a Store.
type Manager struct {
	store    Store
	catalog  *catalog.Catalog
	resolver WeatherResolver
	clock    clockwork.Clock
}

// NewManager creates a new Manager. A nil clock means the real clock.
func NewManager(store Store, cat *catalog.Catalog, resolver WeatherResolver, clock clockwork.Clock) *Manager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Manager{
		store:    store,
		catalog:  cat,
		resolver: resolver,
		clock:    clock,
	}
}

// Create stores a new empty trip to dest.
func (m *Manager) Create(name string, dest weather.Destination) (Trip, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Trip{}, fmt.Errorf("%w: name is required", ErrInvalidTrip)
	}
	if strings.TrimSpace(dest.Name) == "" {
		return Trip{}, fmt.Errorf("%w: destination is required", ErrInvalidTrip)
	}

	t := Trip{
		ID:          uuid.NewString(),
		Name:        name,
		Destination: dest,
		Agenda:      []AgendaItem{},
		CreatedAt:   m.clock.Now().UTC(),
	}
	if err := m.store.Save(t); err != nil {
		return Trip{}, err
	}
	log.Info("trip created", zap.String("trip_id", t.ID), zap.String("destination", dest.Name))
	return t, nil
}

// List returns all trips, oldest first.
func (m *Manager) List() []Trip {
	trips := m.store.List()
	sort.Slice(trips, func(i, j int) bool {
		return trips[i].CreatedAt.Before(trips[j].CreatedAt)
	})
	return trips
}

// Get returns one trip.
func (m *Manager) Get(id string) (Trip, error) {
	return m.store.Get(id)
}

// Delete removes a trip.
func (m *Manager) Delete(id string) error {
	if err := m.store.Delete(id); err != nil {
		return err
	}
	log.Info("trip deleted", zap.String("trip_id", id))
	return nil
}

// AddAgendaItem schedules a catalog activity on the trip. The activity must be
// offered at the trip's destination.
func (m *Manager) AddAgendaItem(tripID, activityID string, dates DateRange) (AgendaItem, error) {
	if err := dates.Validate(); err != nil {
		return AgendaItem{}, err
	}
	activity, err := m.catalog.Activity(activityID)
	if err != nil {
		return AgendaItem{}, err
	}

	item := AgendaItem{
		ID:       uuid.NewString(),
		Activity: activity,
		Dates:    dates,
	}
	_, err = m.store.Update(tripID, func(t *Trip) error {
		if !strings.EqualFold(activity.Destination, t.Destination.Name) {
			return fmt.Errorf("%w: %q is offered at %s, trip goes to %s",
				ErrActivityMismatch, activity.Name, activity.Destination, t.Destination.Name)
		}
		t.Agenda = append(t.Agenda, item)
		sort.SliceStable(t.Agenda, func(i, j int) bool {
			return t.Agenda[i].Dates.Start.Before(t.Agenda[j].Dates.Start)
		})
		return nil
	})
	if err != nil {
		return AgendaItem{}, err
	}
	return item, nil
}

// RemoveAgendaItem drops one agenda entry from a trip.
func (m *Manager) RemoveAgendaItem(tripID, itemID string) error {
	_, err := m.store.Update(tripID, func(t *Trip) error {
		for i, item := range t.Agenda {
			if item.ID == itemID {
				t.Agenda = append(t.Agenda[:i], t.Agenda[i+1:]...)
				return nil
			}
		}
		return ErrItemNotFound
	})
	return err
}

// RefreshStats summarizes one RefreshAgendaWeather run.
type RefreshStats struct {
	Updated int
	Failed  int
}

// RefreshAgendaWeather resolves the weather of every agenda item whose start
// day is inside the forecast window and records it on the item.
func (m *Manager) RefreshAgendaWeather(ctx context.Context) RefreshStats {
	var stats RefreshStats
	now := m.clock.Now()

	for _, t := range m.store.List() {
		updates := make(map[string]weather.WeatherEstimate)
		for _, item := range t.Agenda {
			if weather.Classify(item.Dates.Start, now) != weather.NearTerm {
				continue
			}
			if ctx.Err() != nil {
				return stats
			}
			est, err := m.resolver.Resolve(ctx, t.Destination, item.Dates.Start)
			if err != nil {
				stats.Failed++
				log.Warn("agenda weather refresh failed",
					zap.String("trip_id", t.ID),
					zap.String("item_id", item.ID),
					zap.String("date", common.FormatDate(item.Dates.Start)),
					zap.String("kind", weather.Kind(err)),
					zap.Error(err))
				continue
			}
			updates[item.ID] = est
		}
		if len(updates) == 0 {
			continue
		}

		refreshedAt := m.clock.Now().UTC()
		_, err := m.store.Update(t.ID, func(stored *Trip) error {
			for i := range stored.Agenda {
				est, ok := updates[stored.Agenda[i].ID]
				if !ok {
					continue
				}
				stored.Agenda[i].Weather = &est
				stored.Agenda[i].WeatherUpdatedAt = &refreshedAt
				stats.Updated++
			}
			return nil
		})
		if err != nil {
			// the trip was deleted while we were resolving
			log.Debug("trip vanished during refresh", zap.String("trip_id", t.ID), zap.Error(err))
		}
	}
	return stats
}

// PruneEnded deletes trips that ended more than maxAge ago. A non-positive
// maxAge disables pruning.
func (m *Manager) PruneEnded(maxAge time.Duration) int {
	if maxAge <= 0 {
		return 0
	}
	removed := m.store.DeleteEndedBefore(m.clock.Now().Add(-maxAge))
	if removed > 0 {
		log.Info("pruned ended trips", zap.Int("removed", removed))
	}
	return removed
}
