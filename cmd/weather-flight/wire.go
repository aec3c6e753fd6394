package main

import (
	"fmt"
	"net/http"

	"github.com/i474232898/weather-flight/internal/catalog"
	"github.com/i474232898/weather-flight/internal/config"
	"github.com/i474232898/weather-flight/internal/geo"
	"github.com/i474232898/weather-flight/internal/log"
	"github.com/i474232898/weather-flight/internal/store"
	"github.com/i474232898/weather-flight/internal/trip"
	"github.com/i474232898/weather-flight/internal/weather"
	"github.com/i474232898/weather-flight/internal/weather/providers"
)

// components is everything the commands share.
type components struct {
	cfg      *config.AppConfig
	catalog  *catalog.Catalog
	resolver *weather.Resolver
	trips    *trip.Manager
	locator  *geo.Locator
}

func build() (*components, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		log.Warnf("ignoring LOG_LEVEL %q: %v", cfg.LogLevel, err)
	}

	// Shared HTTP client for outbound calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	forecast := providers.NewOpenMeteoProvider(cfg.OpenMeteoBaseURL, providers.HTTPClientConfig{
		Client:  httpClient,
		Limiter: providers.NewLimiter(cfg.OpenMeteoRPS, cfg.OpenMeteoBurst),
	})

	var prediction weather.PredictionSource
	if cfg.ModelServerURL != "" {
		prediction = providers.NewModelServerPredictor(cfg.ModelServerURL, providers.HTTPClientConfig{Client: httpClient})
		log.Infof("using model server estimators at %s", cfg.ModelServerURL)
	} else {
		normals, err := providers.DefaultNormals()
		if err != nil {
			return nil, fmt.Errorf("failed to load climate normals: %w", err)
		}
		prediction = providers.NewNormalsPredictor(normals)
		log.Infof("using bundled climate normals for %v", normals.Cities())
	}

	resolver := weather.NewResolver(forecast, prediction)
	cat := catalog.Default()
	trips := trip.NewManager(store.NewMemoryStore(cfg.StoreMaxTrips), cat, resolver, nil)

	return &components{
		cfg:      cfg,
		catalog:  cat,
		resolver: resolver,
		trips:    trips,
		locator:  geo.NewLocator(cfg.GeocoderAPIKey, cfg.GeocoderCacheTTL),
	}, nil
}
