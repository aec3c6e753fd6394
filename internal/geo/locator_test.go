package geo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/weather-flight/internal/weather"
)

func TestLocateBuildsDestination(t *testing.T) {
	calls := 0
	l := NewLocatorWithReverse(func(loc geocoder.Location) ([]geocoder.Address, error) {
		calls++
		return []geocoder.Address{{
			City:             "Naco",
			State:            "Sonora",
			Country:          "Mexico",
			FormattedAddress: "Naco, Son., Mexico",
		}}, nil
	}, time.Hour)

	coord := weather.Coordinate{Latitude: 31.33166, Longitude: -109.94805}
	dest, err := l.Locate(context.Background(), coord)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest.Name != "Naco" || dest.Region != "Sonora, Mexico" || dest.Coordinate != coord {
		t.Fatalf("unexpected destination %+v", dest)
	}
	if dest.ID == "" {
		t.Fatal("expected a stable id")
	}

	// a nearby point hits the cache
	again, err := l.Locate(context.Background(), weather.Coordinate{Latitude: 31.3318, Longitude: -109.9481})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 || again.ID != dest.ID {
		t.Fatalf("expected cached lookup, got %d calls", calls)
	}
}

func TestLocateFallsBackToFormattedAddress(t *testing.T) {
	l := NewLocatorWithReverse(func(geocoder.Location) ([]geocoder.Address, error) {
		return []geocoder.Address{{FormattedAddress: "Ruta 1, Baja California"}}, nil
	}, 0)

	dest, err := l.Locate(context.Background(), weather.Coordinate{Latitude: 28.7, Longitude: -112.9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest.Name != "Ruta 1, Baja California" || dest.Region != "" {
		t.Fatalf("unexpected destination %+v", dest)
	}
}

func TestLocateErrors(t *testing.T) {
	empty := NewLocatorWithReverse(func(geocoder.Location) ([]geocoder.Address, error) {
		return nil, nil
	}, time.Hour)
	if _, err := empty.Locate(context.Background(), weather.Coordinate{}); !errors.Is(err, ErrNoAddress) {
		t.Fatalf("expected ErrNoAddress, got %v", err)
	}

	if _, err := empty.Locate(context.Background(), weather.Coordinate{Latitude: 100}); !errors.Is(err, weather.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := empty.Locate(ctx, weather.Coordinate{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	noKey := NewLocator("", time.Hour)
	if _, err := noKey.Locate(context.Background(), weather.Coordinate{Latitude: 1, Longitude: 1}); !errors.Is(err, errNoAPIKey) {
		t.Fatalf("expected errNoAPIKey, got %v", err)
	}
}
