package weather

import (
	"fmt"
	"time"
)

// FromForecast maps the first entry of each daily array of r into a WeatherEstimate.
func FromForecast(date time.Time, r ForecastReading) (WeatherEstimate, error) {
	maxT, err := first("temperature_2m_max", r.TemperatureMaxC)
	if err != nil {
		return WeatherEstimate{}, err
	}
	minT, err := first("temperature_2m_min", r.TemperatureMinC)
	if err != nil {
		return WeatherEstimate{}, err
	}
	precip, err := first("precipitation_sum", r.PrecipitationSumMm)
	if err != nil {
		return WeatherEstimate{}, err
	}
	wind, err := first("windspeed_10m_max", r.WindSpeedMaxKmh)
	if err != nil {
		return WeatherEstimate{}, err
	}
	humidity, err := first("relative_humidity_2m_mean", r.RelativeHumidityMean)
	if err != nil {
		return WeatherEstimate{}, err
	}

	est := WeatherEstimate{
		Date:            date,
		MaxTemperatureC: &maxT,
		MinTemperatureC: &minT,
		PrecipitationMm: precip,
		WindSpeedKmh:    wind,
		HumidityPercent: humidity,
		Season:          SeasonOf(date),
		Source:          SourceLiveForecast,
	}
	if r.CurrentTemperatureC != nil {
		current := *r.CurrentTemperatureC
		est.CurrentTemperatureC = &current
	}
	return est, nil
}

// FromPrediction maps a model prediction into a WeatherEstimate. The single
// temperature becomes the max; there is no min and no live reading.
func FromPrediction(date time.Time, p Prediction) WeatherEstimate {
	temp := p.TemperatureC
	return WeatherEstimate{
		Date:            date,
		MaxTemperatureC: &temp,
		PrecipitationMm: p.PrecipitationMm,
		WindSpeedKmh:    p.WindSpeedKmh,
		HumidityPercent: p.HumidityPercent,
		Season:          SeasonOf(date),
		Source:          SourceModelPrediction,
	}
}

func first(field string, values []*float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: daily field %s has no entries", ErrDecode, field)
	}
	if values[0] == nil {
		return 0, fmt.Errorf("%w: daily field %s is null", ErrDecode, field)
	}
	return *values[0], nil
}
