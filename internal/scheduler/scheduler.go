package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/i474232898/weather-flight/internal/log"
	"github.com/i474232898/weather-flight/internal/trip"
)

const refreshTimeout = 2 * time.Minute

// Scheduler periodically refreshes agenda weather and prunes ended trips.
type Scheduler struct {
	scheduler       *gocron.Scheduler
	trips           *trip.Manager
	refreshInterval time.Duration
	pruneInterval   time.Duration
	maxAge          time.Duration
}

// New creates a new Scheduler. Non-positive intervals disable the matching job.
func New(trips *trip.Manager, refreshInterval, pruneInterval, maxAge time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler:       s,
		trips:           trips,
		refreshInterval: refreshInterval,
		pruneInterval:   pruneInterval,
		maxAge:          maxAge,
	}
}

// Start schedules the periodic jobs and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.refreshInterval > 0 {
		if _, err := s.scheduler.Every(s.refreshInterval).Tag("agenda-refresh").Do(s.refreshAgendaWeather); err != nil {
			return err
		}
	}
	if s.pruneInterval > 0 && s.maxAge > 0 {
		if _, err := s.scheduler.Every(s.pruneInterval).Tag("trip-prune").Do(s.pruneTrips); err != nil {
			return err
		}
	}
	if len(s.scheduler.Jobs()) == 0 {
		log.Info("scheduler: no jobs configured; nothing to schedule")
		return nil
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) refreshAgendaWeather() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	stats := s.trips.RefreshAgendaWeather(ctx)
	log.Info("scheduler: agenda weather refreshed",
		zap.Int("updated", stats.Updated),
		zap.Int("failed", stats.Failed))
}

func (s *Scheduler) pruneTrips() {
	removed := s.trips.PruneEnded(s.maxAge)
	log.Info("scheduler: trip prune completed", zap.Int("removed", removed))
}
