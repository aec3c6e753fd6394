package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/i474232898/weather-flight/internal/weather"
)

const openMeteoBody = `{
  "latitude": 42.1,
  "longitude": 1.85,
  "current": {"time": "2025-01-03T10:00", "temperature_2m": 6.3},
  "daily": {
    "time": ["2025-01-03"],
    "temperature_2m_max": [9.8],
    "temperature_2m_min": [-1.2],
    "precipitation_sum": [0.0],
    "windspeed_10m_max": [11.5],
    "relative_humidity_2m_mean": [71]
  }
}`

var bergaCoord = weather.Coordinate{Latitude: 42.10429, Longitude: 1.84628}

func newTestOpenMeteo(t *testing.T, handler http.HandlerFunc) *OpenMeteoProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenMeteoProvider(srv.URL, HTTPClientConfig{Client: srv.Client()})
}

func TestOpenMeteoFetchForecast(t *testing.T) {
	var hits int
	p := newTestOpenMeteo(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path != "/v1/forecast" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("start_date") != "2025-01-03" || q.Get("end_date") != "2025-01-03" {
			t.Errorf("expected a single day query, got %s..%s", q.Get("start_date"), q.Get("end_date"))
		}
		if q.Get("latitude") != "42.104290" || q.Get("longitude") != "1.846280" {
			t.Errorf("unexpected coordinate %s,%s", q.Get("latitude"), q.Get("longitude"))
		}
		if q.Get("current") != "temperature_2m" || q.Get("timezone") != "auto" {
			t.Errorf("unexpected current/timezone params %q %q", q.Get("current"), q.Get("timezone"))
		}
		for _, field := range openMeteoDailyFields {
			if !strings.Contains(q.Get("daily"), field) {
				t.Errorf("daily params miss %s", field)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(openMeteoBody))
	})

	reading, err := p.FetchForecast(context.Background(), bergaCoord, time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits != 1 {
		t.Fatalf("expected exactly one request, got %d", hits)
	}
	if *reading.TemperatureMaxC[0] != 9.8 || *reading.TemperatureMinC[0] != -1.2 {
		t.Fatalf("unexpected temperatures %+v", reading)
	}
	if *reading.RelativeHumidityMean[0] != 71 || *reading.WindSpeedMaxKmh[0] != 11.5 {
		t.Fatalf("unexpected reading %+v", reading)
	}
	if reading.CurrentTemperatureC == nil || *reading.CurrentTemperatureC != 6.3 {
		t.Fatal("expected current temperature 6.3")
	}
}

func TestOpenMeteoWithoutCurrentBlock(t *testing.T) {
	p := newTestOpenMeteo(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"daily":{"time":["2025-01-03"],"temperature_2m_max":[1],"temperature_2m_min":[0],"precipitation_sum":[0],"windspeed_10m_max":[0],"relative_humidity_2m_mean":[50]}}`))
	})

	reading, err := p.FetchForecast(context.Background(), bergaCoord, time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.CurrentTemperatureC != nil {
		t.Fatal("expected no current temperature")
	}
}

func TestOpenMeteoNullDailyValues(t *testing.T) {
	p := newTestOpenMeteo(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"daily":{"time":["2025-01-16"],"temperature_2m_max":[8.1],"temperature_2m_min":[1.0],"precipitation_sum":[null],"windspeed_10m_max":[null],"relative_humidity_2m_mean":[null]}}`))
	})

	date := time.Date(2025, time.January, 16, 0, 0, 0, 0, time.UTC)
	reading, err := p.FetchForecast(context.Background(), bergaCoord, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.PrecipitationSumMm[0] != nil || reading.WindSpeedMaxKmh[0] != nil || reading.RelativeHumidityMean[0] != nil {
		t.Fatalf("null daily values must not decode as zero: %+v", reading)
	}

	if _, err := weather.FromForecast(date, reading); !errors.Is(err, weather.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestOpenMeteoNullCurrentTemperature(t *testing.T) {
	p := newTestOpenMeteo(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"current":{"time":"2025-01-03T10:00","temperature_2m":null},"daily":{"time":["2025-01-03"],"temperature_2m_max":[1],"temperature_2m_min":[0],"precipitation_sum":[0],"windspeed_10m_max":[3],"relative_humidity_2m_mean":[50]}}`))
	})

	date := time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)
	reading, err := p.FetchForecast(context.Background(), bergaCoord, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	est, err := weather.FromForecast(date, reading)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.HasLiveReading() {
		t.Fatal("a null current temperature is not a live reading")
	}
}

func TestOpenMeteoFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"server error", http.StatusInternalServerError, `{"error":true}`, weather.ErrTransport},
		{"bad request", http.StatusBadRequest, `{"error":true,"reason":"Parameter 'start_date' is out of allowed range"}`, weather.ErrTransport},
		{"rate limited", http.StatusTooManyRequests, ``, weather.ErrTransport},
		{"empty body", http.StatusOK, "  \n", weather.ErrEmptyResponse},
		{"malformed json", http.StatusOK, `{"daily": [`, weather.ErrDecode},
		{"no daily block", http.StatusOK, `{"latitude": 42.1}`, weather.ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits int
			p := newTestOpenMeteo(t, func(w http.ResponseWriter, r *http.Request) {
				hits++
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := p.FetchForecast(context.Background(), bergaCoord, time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if hits != 1 {
				t.Fatalf("failures must not be retried, got %d requests", hits)
			}
		})
	}
}

func TestOpenMeteoUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := NewOpenMeteoProvider(url, HTTPClientConfig{Client: &http.Client{Timeout: time.Second}})
	_, err := p.FetchForecast(context.Background(), bergaCoord, time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, weather.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestOpenMeteoRejectsInvalidInput(t *testing.T) {
	p := NewOpenMeteoProvider("", HTTPClientConfig{Client: http.DefaultClient})

	_, err := p.FetchForecast(context.Background(), weather.Coordinate{Latitude: 120}, time.Now())
	if !errors.Is(err, weather.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	_, err = p.FetchForecast(context.Background(), bergaCoord, time.Time{})
	if !errors.Is(err, weather.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestOpenMeteoMissingClient(t *testing.T) {
	p := NewOpenMeteoProvider("", HTTPClientConfig{})
	_, err := p.FetchForecast(context.Background(), bergaCoord, time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, weather.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestNewLimiter(t *testing.T) {
	if NewLimiter(0, 5) != nil {
		t.Fatal("expected no limiter for zero rate")
	}
	l := NewLimiter(2, 0)
	if l == nil || l.Burst() != 1 {
		t.Fatal("expected limiter with burst 1")
	}
}
