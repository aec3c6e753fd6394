package config

import (
	"testing"
	"time"
)

func TestFromViperDefaults(t *testing.T) {
	cfg, err := FromViper(newViper())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.OpenMeteoBaseURL != "https://api.open-meteo.com" || cfg.OpenMeteoRPS != 5 || cfg.OpenMeteoBurst != 5 {
		t.Fatalf("unexpected open-meteo defaults %+v", cfg)
	}
	if cfg.ModelServerURL != "" {
		t.Fatal("model server must be opt-in")
	}
	if cfg.AgendaRefreshInterval != time.Hour || cfg.StoreMaxAge != 720*time.Hour {
		t.Fatalf("unexpected scheduler defaults %+v", cfg)
	}
}

func TestFromViperEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OPEN_METEO_RPS", "0.5")
	t.Setenv("MODEL_SERVER_URL", "http://models:8000")
	t.Setenv("STORE_MAX_TRIPS", "100")
	t.Setenv("AGENDA_REFRESH_INTERVAL", "15m")

	cfg, err := FromViper(newViper())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.OpenMeteoRPS != 0.5 || cfg.StoreMaxTrips != 100 {
		t.Fatalf("environment not applied: %+v", cfg)
	}
	if cfg.ModelServerURL != "http://models:8000" || cfg.AgendaRefreshInterval != 15*time.Minute {
		t.Fatalf("environment not applied: %+v", cfg)
	}
}

func TestFromViperRejectsBadValues(t *testing.T) {
	for key, value := range map[string]string{
		"HTTP_TIMEOUT":     "soon",
		"OPEN_METEO_RPS":   "fast",
		"OPEN_METEO_BURST": "1.5",
		"STORE_MAX_AGE":    "forever",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := FromViper(newViper()); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}
