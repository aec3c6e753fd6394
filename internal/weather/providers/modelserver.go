package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-flight/internal/weather"
)

// ModelServerEstimator asks a remote model-serving endpoint for one feature:
// POST {baseURL}/predict/{feature} {"city": ..., "date": "MM-dd"} -> {"value": ...}.
type ModelServerEstimator struct {
	feature Feature
	url     string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewModelServerEstimator creates a new ModelServerEstimator.
func NewModelServerEstimator(baseURL string, feature Feature, cfg HTTPClientConfig) *ModelServerEstimator {
	return &ModelServerEstimator{
		feature: feature,
		url:     fmt.Sprintf("%s/predict/%s", strings.TrimRight(baseURL, "/"), feature),
		httpCfg: cfg,
		circuit: newCircuitBreaker("modelserver-" + string(feature)),
	}
}

func (e *ModelServerEstimator) Estimate(ctx context.Context, city, monthDay string) (float64, error) {
	reqBody, err := json.Marshal(struct {
		City string `json:"city"`
		Date string `json:"date"`
	}{City: city, Date: monthDay})
	if err != nil {
		return 0, err
	}

	buildRequest := func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPost, e.url, bytes.NewReader(reqBody))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}

	body, err := doRequest(ctx, e.httpCfg, e.circuit, buildRequest)
	if err != nil {
		if errors.Is(err, errUnexpected) && isUnknownCity(err.Error()) {
			return 0, fmt.Errorf("%w: %q: %w", weather.ErrUnknownCity, city, err)
		}
		return 0, err
	}

	var payload struct {
		Value *float64 `json:"value"`
		Error string   `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("%w: %v", weather.ErrDecode, err)
	}
	if payload.Error != "" {
		if isUnknownCity(payload.Error) {
			return 0, fmt.Errorf("%w: %q", weather.ErrUnknownCity, city)
		}
		return 0, fmt.Errorf("model server: %s", payload.Error)
	}
	if payload.Value == nil {
		return 0, fmt.Errorf("%w: model server response has no value", weather.ErrDecode)
	}
	return *payload.Value, nil
}

// NewModelServerPredictor wires one ModelServerEstimator per feature into an EstimatorSet.
func NewModelServerPredictor(baseURL string, cfg HTTPClientConfig) *EstimatorSet {
	return NewEstimatorSet("model-server", Estimators{
		Temperature:   NewModelServerEstimator(baseURL, FeatureTemperature, cfg),
		Precipitation: NewModelServerEstimator(baseURL, FeaturePrecipitation, cfg),
		Humidity:      NewModelServerEstimator(baseURL, FeatureHumidity, cfg),
		Wind:          NewModelServerEstimator(baseURL, FeatureWind, cfg),
	})
}

func isUnknownCity(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "unknown city")
}
