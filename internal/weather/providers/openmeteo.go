package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-flight/internal/weather"
)

// DefaultOpenMeteoBaseURL is the public Open-Meteo API host.
const DefaultOpenMeteoBaseURL = "https://api.open-meteo.com"

var openMeteoDailyFields = []string{
	"temperature_2m_max",
	"temperature_2m_min",
	"precipitation_sum",
	"windspeed_10m_max",
	"relative_humidity_2m_mean",
}

// OpenMeteoProvider implements weather.ForecastSource for Open-Meteo.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewOpenMeteoProvider creates a provider talking to baseURL (DefaultOpenMeteoBaseURL when empty).
func NewOpenMeteoProvider(baseURL string, cfg HTTPClientConfig) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = DefaultOpenMeteoBaseURL
	}
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: strings.TrimRight(baseURL, "/") + "/v1/forecast",
		httpCfg: cfg,
		circuit: newCircuitBreaker("openmeteo"),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// FetchForecast requests the daily aggregates and the current temperature for
// coord on a single day (start_date = end_date).
func (p *OpenMeteoProvider) FetchForecast(ctx context.Context, coord weather.Coordinate, date time.Time) (weather.ForecastReading, error) {
	if err := coord.Validate(); err != nil {
		return weather.ForecastReading{}, err
	}
	if date.IsZero() {
		return weather.ForecastReading{}, fmt.Errorf("%w: date is required", weather.ErrInvalidRequest)
	}

	day := date.Format(weather.DateLayout)
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", coord.Latitude))
		values.Set("longitude", fmt.Sprintf("%f", coord.Longitude))
		values.Set("start_date", day)
		values.Set("end_date", day)
		values.Set("daily", strings.Join(openMeteoDailyFields, ","))
		values.Set("current", "temperature_2m")
		values.Set("timezone", "auto")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	body, err := doRequest(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.ForecastReading{}, err
	}

	var payload struct {
		Daily *struct {
			Time                 []string   `json:"time"`
			TemperatureMax       []*float64 `json:"temperature_2m_max"`
			TemperatureMin       []*float64 `json:"temperature_2m_min"`
			PrecipitationSum     []*float64 `json:"precipitation_sum"`
			WindSpeedMax         []*float64 `json:"windspeed_10m_max"`
			RelativeHumidityMean []*float64 `json:"relative_humidity_2m_mean"`
		} `json:"daily"`
		Current *struct {
			Time          string   `json:"time"`
			Temperature2m *float64 `json:"temperature_2m"`
		} `json:"current"`
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return weather.ForecastReading{}, fmt.Errorf("%w: %v", weather.ErrDecode, err)
	}
	if payload.Daily == nil {
		return weather.ForecastReading{}, fmt.Errorf("%w: payload has no daily block", weather.ErrDecode)
	}

	reading := weather.ForecastReading{
		Time:                 payload.Daily.Time,
		TemperatureMaxC:      payload.Daily.TemperatureMax,
		TemperatureMinC:      payload.Daily.TemperatureMin,
		PrecipitationSumMm:   payload.Daily.PrecipitationSum,
		WindSpeedMaxKmh:      payload.Daily.WindSpeedMax,
		RelativeHumidityMean: payload.Daily.RelativeHumidityMean,
	}
	if payload.Current != nil {
		reading.CurrentTemperatureC = payload.Current.Temperature2m
	}
	return reading, nil
}
