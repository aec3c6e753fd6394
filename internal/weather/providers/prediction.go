package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/i474232898/weather-flight/internal/weather"
)

// Feature names one of the four predicted weather quantities.
type Feature string

const (
	FeatureTemperature   Feature = "temperature"
	FeaturePrecipitation Feature = "precipitation"
	FeatureHumidity      Feature = "humidity"
	FeatureWind          Feature = "wind"
)

// Features lists every predicted quantity in a fixed order.
var Features = []Feature{FeatureTemperature, FeaturePrecipitation, FeatureHumidity, FeatureWind}

// MonthDayLayout is the date key the estimators are trained on. The year is dropped.
const MonthDayLayout = "01-02"

// Estimator predicts one scalar for a city on a month-day ("MM-dd").
type Estimator interface {
	Estimate(ctx context.Context, city, monthDay string) (float64, error)
}

// EstimatorFunc adapts a function to the Estimator interface.
type EstimatorFunc func(ctx context.Context, city, monthDay string) (float64, error)

func (f EstimatorFunc) Estimate(ctx context.Context, city, monthDay string) (float64, error) {
	return f(ctx, city, monthDay)
}

// Estimators holds one estimator per feature.
type Estimators struct {
	Temperature   Estimator
	Precipitation Estimator
	Humidity      Estimator
	Wind          Estimator
}

// EstimatorSet implements weather.PredictionSource by joining four independent
// estimators. All four must succeed; the first failure cancels the others.
type EstimatorSet struct {
	name       string
	estimators Estimators
}

// NewEstimatorSet creates a new EstimatorSet.
func NewEstimatorSet(name string, estimators Estimators) *EstimatorSet {
	return &EstimatorSet{name: name, estimators: estimators}
}

func (s *EstimatorSet) Name() string {
	return s.name
}

// Predict runs the four estimators concurrently and waits for all of them.
func (s *EstimatorSet) Predict(ctx context.Context, city string, date time.Time) (weather.Prediction, error) {
	if strings.TrimSpace(city) == "" {
		return weather.Prediction{}, fmt.Errorf("%w: city is required", weather.ErrInvalidRequest)
	}
	monthDay := date.Format(MonthDayLayout)

	var p weather.Prediction
	jobs := []struct {
		feature Feature
		est     Estimator
		dst     *float64
	}{
		{FeatureTemperature, s.estimators.Temperature, &p.TemperatureC},
		{FeaturePrecipitation, s.estimators.Precipitation, &p.PrecipitationMm},
		{FeatureHumidity, s.estimators.Humidity, &p.HumidityPercent},
		{FeatureWind, s.estimators.Wind, &p.WindSpeedKmh},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if job.est == nil {
				return fmt.Errorf("%w: no %s estimator configured", weather.ErrEstimator, job.feature)
			}
			v, err := job.est.Estimate(gctx, city, monthDay)
			if err != nil {
				return fmt.Errorf("%w: %s estimator: %w", weather.ErrEstimator, job.feature, err)
			}
			*job.dst = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return weather.Prediction{}, err
	}
	return p, nil
}

// errCanceled is reported by estimators that notice the join was canceled.
var errCanceled = errors.New("estimation canceled")
