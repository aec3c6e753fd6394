// Package suggest picks catalog activities that suit a weather estimate.
package suggest

import (
	"github.com/i474232898/weather-flight/internal/catalog"
	"github.com/i474232898/weather-flight/internal/weather"
)

const (
	// RainThresholdMm is the daily precipitation at which a day counts as rainy.
	RainThresholdMm = 1.0
	// CloudyHumidityPercent is the mean humidity at which a dry day counts as cloudy.
	CloudyHumidityPercent = 75.0
)

// ConditionOf reduces an estimate to the condition activities are tagged with.
func ConditionOf(est weather.WeatherEstimate) weather.Condition {
	switch {
	case est.PrecipitationMm >= RainThresholdMm:
		return weather.ConditionRain
	case est.HumidityPercent >= CloudyHumidityPercent:
		return weather.ConditionCloudy
	default:
		return weather.ConditionSunny
	}
}

// Suggestion is an estimate together with the activities that suit it.
type Suggestion struct {
	Condition  weather.Condition       `json:"condition"`
	Estimate   weather.WeatherEstimate `json:"estimate"`
	Activities []catalog.Activity      `json:"activities"`
}

// Suggest filters activities down to those recommended for the estimate's
// condition, keeping their order.
func Suggest(activities []catalog.Activity, est weather.WeatherEstimate) Suggestion {
	cond := ConditionOf(est)
	picked := make([]catalog.Activity, 0, len(activities))
	for _, a := range activities {
		if a.RecommendedWhen(cond) {
			picked = append(picked, a)
		}
	}
	return Suggestion{
		Condition:  cond,
		Estimate:   est,
		Activities: picked,
	}
}
