// Package geo turns a device coordinate into a Destination by reverse geocoding.
package geo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelvins/geocoder"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/i474232898/weather-flight/internal/catalog"
	"github.com/i474232898/weather-flight/internal/log"
	"github.com/i474232898/weather-flight/internal/weather"
)

var (
	errNoAPIKey = errors.New("geocoder api key is not configured")
	// ErrNoAddress is returned when the geocoder knows nothing about a coordinate.
	ErrNoAddress = errors.New("no address found for coordinate")
)

// ReverseFunc looks up the addresses at a location.
type ReverseFunc func(geocoder.Location) ([]geocoder.Address, error)

// Locator builds destinations for arbitrary coordinates.
type Locator struct {
	reverse ReverseFunc
	cache   *cache.Cache
}

// NewLocator creates a Locator backed by the Google geocoding API.
// An empty apiKey yields a Locator whose lookups always fail.
func NewLocator(apiKey string, ttl time.Duration) *Locator {
	reverse := geocoder.GeocodingReverse
	if apiKey == "" {
		reverse = func(geocoder.Location) ([]geocoder.Address, error) {
			return nil, errNoAPIKey
		}
	} else {
		geocoder.ApiKey = apiKey
	}
	return NewLocatorWithReverse(reverse, ttl)
}

// NewLocatorWithReverse creates a Locator around a custom lookup.
func NewLocatorWithReverse(reverse ReverseFunc, ttl time.Duration) *Locator {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Locator{
		reverse: reverse,
		cache:   cache.New(ttl, 2*ttl),
	}
}

// Locate returns a Destination for coord named after the nearest city.
// Coordinates are cached at roughly 100 m resolution.
func (l *Locator) Locate(ctx context.Context, coord weather.Coordinate) (weather.Destination, error) {
	if err := coord.Validate(); err != nil {
		return weather.Destination{}, err
	}
	if err := ctx.Err(); err != nil {
		return weather.Destination{}, err
	}

	key := cacheKey(coord)
	if cached, found := l.cache.Get(key); found {
		return cached.(weather.Destination), nil
	}

	addresses, err := l.reverse(geocoder.Location{Latitude: coord.Latitude, Longitude: coord.Longitude})
	if err != nil {
		log.Warn("reverse geocoding failed", zap.String("coordinate", key), zap.Error(err))
		return weather.Destination{}, fmt.Errorf("reverse geocode %s: %w", key, err)
	}
	if len(addresses) == 0 {
		return weather.Destination{}, ErrNoAddress
	}

	dest := destinationFrom(addresses[0], coord)
	l.cache.Set(key, dest, cache.DefaultExpiration)
	return dest, nil
}

func destinationFrom(addr geocoder.Address, coord weather.Coordinate) weather.Destination {
	name := strings.TrimSpace(addr.City)
	if name == "" {
		name = strings.TrimSpace(addr.FormattedAddress)
	}
	if name == "" {
		name = cacheKey(coord)
	}

	var region []string
	for _, part := range []string{addr.State, addr.Country} {
		if p := strings.TrimSpace(part); p != "" {
			region = append(region, p)
		}
	}

	return weather.Destination{
		ID:         catalog.StableID("located", cacheKey(coord)),
		Name:       name,
		Region:     strings.Join(region, ", "),
		Coordinate: coord,
	}
}

func cacheKey(coord weather.Coordinate) string {
	return fmt.Sprintf("%.3f,%.3f", coord.Latitude, coord.Longitude)
}
