package scheduler

import (
	"testing"
	"time"

	"github.com/i474232898/weather-flight/internal/catalog"
	"github.com/i474232898/weather-flight/internal/store"
	"github.com/i474232898/weather-flight/internal/trip"
)

func newManager() *trip.Manager {
	return trip.NewManager(store.NewMemoryStore(0), catalog.Default(), nil, nil)
}

func TestStartWithoutJobs(t *testing.T) {
	s := New(newManager(), 0, 0, 0)
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.scheduler.Jobs()) != 0 {
		t.Fatalf("expected no jobs, got %d", len(s.scheduler.Jobs()))
	}
	s.Stop()
}

func TestStartSchedulesJobs(t *testing.T) {
	s := New(newManager(), time.Hour, 24*time.Hour, 48*time.Hour)
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Stop()

	tags := map[string]bool{}
	for _, job := range s.scheduler.Jobs() {
		for _, tag := range job.Tags() {
			tags[tag] = true
		}
	}
	if !tags["agenda-refresh"] || !tags["trip-prune"] {
		t.Fatalf("expected both jobs, got %v", tags)
	}
}

func TestPruneJobNeedsMaxAge(t *testing.T) {
	s := New(newManager(), 0, time.Hour, 0)
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Stop()
	if len(s.scheduler.Jobs()) != 0 {
		t.Fatal("prune job must not be scheduled without a max age")
	}
}
