package weather

import (
	"encoding/json"
	"fmt"
	"time"
)

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionSunny   Condition = "sunny"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
)

// Season is the meteorological season of a calendar date.
type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
)

// SourceKind tags where a WeatherEstimate came from.
type SourceKind string

const (
	SourceLiveForecast    SourceKind = "liveForecast"
	SourceModelPrediction SourceKind = "modelPrediction"
)

// DateLayout is the calendar-day format used on the wire.
const DateLayout = "2006-01-02"

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate reports whether both components are inside their ranges.
func (c Coordinate) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %f out of range", ErrInvalidRequest, c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %f out of range", ErrInvalidRequest, c.Longitude)
	}
	return nil
}

// Destination is a place a trip can go to.
type Destination struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Region     string     `json:"region"`
	Coordinate Coordinate `json:"coordinate"`
}

// WeatherEstimate is the canonical weather record for one destination and day,
// whichever source produced it.
//
// CurrentTemperatureC is nil when there is no live reading. Callers must check
// HasLiveReading (or Source) instead of comparing against a magic value.
type WeatherEstimate struct {
	Date                time.Time  `json:"-"`
	MaxTemperatureC     *float64   `json:"maxTemperatureC,omitempty"`
	MinTemperatureC     *float64   `json:"minTemperatureC,omitempty"`
	CurrentTemperatureC *float64   `json:"currentTemperatureC,omitempty"`
	PrecipitationMm     float64    `json:"precipitationMm"`
	WindSpeedKmh        float64    `json:"windSpeedKmh"`
	HumidityPercent     float64    `json:"humidityPercent"`
	Season              Season     `json:"season"`
	Source              SourceKind `json:"source"`
}

// HasLiveReading reports whether the estimate carries a measured current temperature.
func (e WeatherEstimate) HasLiveReading() bool {
	return e.CurrentTemperatureC != nil
}

// MarshalJSON renders Date as yyyy-MM-dd and adds the live reading flag.
func (e WeatherEstimate) MarshalJSON() ([]byte, error) {
	type alias WeatherEstimate
	return json.Marshal(struct {
		alias
		Date           string `json:"date"`
		HasLiveReading bool   `json:"hasLiveReading"`
	}{
		alias:          alias(e),
		Date:           e.Date.Format(DateLayout),
		HasLiveReading: e.HasLiveReading(),
	})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (e *WeatherEstimate) UnmarshalJSON(data []byte) error {
	type alias WeatherEstimate
	aux := struct {
		*alias
		Date string `json:"date"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Date == "" {
		e.Date = time.Time{}
		return nil
	}
	d, err := time.Parse(DateLayout, aux.Date)
	if err != nil {
		return fmt.Errorf("invalid estimate date %q: %w", aux.Date, err)
	}
	e.Date = d
	return nil
}

// ForecastReading is the raw single-day payload of a ForecastSource. Daily
// fields are parallel arrays indexed by day offset from the requested date.
// A nil entry is a day the provider reported as null.
type ForecastReading struct {
	Time                 []string
	TemperatureMaxC      []*float64
	TemperatureMinC      []*float64
	PrecipitationSumMm   []*float64
	WindSpeedMaxKmh      []*float64
	RelativeHumidityMean []*float64

	// CurrentTemperatureC is nil when the provider did not report a current block.
	CurrentTemperatureC *float64
}

// Prediction is the point estimate vector of a PredictionSource.
type Prediction struct {
	TemperatureC    float64
	PrecipitationMm float64
	HumidityPercent float64
	WindSpeedKmh    float64
}
