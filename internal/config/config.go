package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/i474232898/weather-flight/internal/log"
)

type AppConfig struct {
	Port        string
	HTTPTimeout time.Duration
	LogLevel    string

	// Open-Meteo forecast source.
	OpenMeteoBaseURL string
	OpenMeteoRPS     float64
	OpenMeteoBurst   int

	// ModelServerURL selects remote estimators; empty means bundled climate normals.
	ModelServerURL string

	GeocoderAPIKey   string
	GeocoderCacheTTL time.Duration

	// Scheduler intervals.
	AgendaRefreshInterval time.Duration
	PruneInterval         time.Duration

	// Trip store retention.
	StoreMaxTrips int           // max number of trips (0 = unlimited)
	StoreMaxAge   time.Duration // how long after its end a trip is kept (0 = forever)
}

// Load reads configuration from the environment (and an optional .env file)
// with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("HTTP_TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("OPEN_METEO_BASE_URL", "https://api.open-meteo.com")
	v.SetDefault("OPEN_METEO_RPS", "5")
	v.SetDefault("OPEN_METEO_BURST", "5")
	v.SetDefault("MODEL_SERVER_URL", "")
	v.SetDefault("GEOCODER_API_KEY", "")
	v.SetDefault("GEOCODER_CACHE_TTL", "24h")
	v.SetDefault("AGENDA_REFRESH_INTERVAL", "1h")
	v.SetDefault("PRUNE_INTERVAL", "24h")
	v.SetDefault("STORE_MAX_TRIPS", "0")
	v.SetDefault("STORE_MAX_AGE", "720h")
	return v
}

// FromViper builds an AppConfig from an already populated viper instance.
func FromViper(v *viper.Viper) (*AppConfig, error) {
	cfg := &AppConfig{
		Port:             v.GetString("PORT"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		OpenMeteoBaseURL: v.GetString("OPEN_METEO_BASE_URL"),
		ModelServerURL:   v.GetString("MODEL_SERVER_URL"),
		GeocoderAPIKey:   v.GetString("GEOCODER_API_KEY"),
	}

	var err error
	if cfg.HTTPTimeout, err = getDuration(v, "HTTP_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.GeocoderCacheTTL, err = getDuration(v, "GEOCODER_CACHE_TTL"); err != nil {
		return nil, err
	}
	if cfg.AgendaRefreshInterval, err = getDuration(v, "AGENDA_REFRESH_INTERVAL"); err != nil {
		return nil, err
	}
	if cfg.PruneInterval, err = getDuration(v, "PRUNE_INTERVAL"); err != nil {
		return nil, err
	}
	if cfg.StoreMaxAge, err = getDuration(v, "STORE_MAX_AGE"); err != nil {
		return nil, err
	}

	if cfg.OpenMeteoRPS, err = strconv.ParseFloat(v.GetString("OPEN_METEO_RPS"), 64); err != nil {
		return nil, fmt.Errorf("invalid OPEN_METEO_RPS: %w", err)
	}
	if cfg.OpenMeteoBurst, err = getInt(v, "OPEN_METEO_BURST"); err != nil {
		return nil, err
	}
	if cfg.StoreMaxTrips, err = getInt(v, "STORE_MAX_TRIPS"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getInt(v *viper.Viper, key string) (int, error) {
	n, err := strconv.Atoi(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
