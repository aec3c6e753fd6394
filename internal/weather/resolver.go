package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/i474232898/weather-flight/internal/log"
)

// Resolver picks the forecast or the prediction source for a date and
// normalizes the answer into a WeatherEstimate. It keeps no state between calls.
type Resolver struct {
	forecast   ForecastSource
	prediction PredictionSource
	clock      clockwork.Clock
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithClock sets the reference clock used to evaluate the forecast window.
func WithClock(clock clockwork.Clock) ResolverOption {
	return func(r *Resolver) {
		r.clock = clock
	}
}

// NewResolver creates a new Resolver.
func NewResolver(forecast ForecastSource, prediction PredictionSource, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		forecast:   forecast,
		prediction: prediction,
		clock:      clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Now returns the resolver's reference time.
func (r *Resolver) Now() time.Time {
	return r.clock.Now()
}

// Resolve returns the weather estimate for dest on date. Exactly one source is
// consulted; failures are returned as-is and never retried.
func (r *Resolver) Resolve(ctx context.Context, dest Destination, date time.Time) (WeatherEstimate, error) {
	if err := validateRequest(dest, date); err != nil {
		return WeatherEstimate{}, err
	}

	now := r.clock.Now()
	day := StartOfDay(date, now.Location())
	horizon := Classify(day, now)

	log.Debug("resolving weather",
		zap.String("destination", dest.Name),
		zap.String("date", day.Format(DateLayout)),
		zap.Stringer("horizon", horizon))

	if horizon == NearTerm {
		return r.resolveForecast(ctx, dest, day)
	}
	return r.resolvePrediction(ctx, dest, day)
}

// ResolveAsync runs Resolve in its own goroutine. The returned channel yields
// exactly one Result and is then closed.
func (r *Resolver) ResolveAsync(ctx context.Context, dest Destination, date time.Time) <-chan Result {
	c := newCompletion()
	go func() {
		var res Result
		defer func() {
			if p := recover(); p != nil {
				res = newResult(WeatherEstimate{}, fmt.Errorf("weather resolver panicked: %v", p))
			}
			c.deliver(res)
		}()
		est, err := r.Resolve(ctx, dest, date)
		res = newResult(est, err)
	}()
	return c.ch
}

func (r *Resolver) resolveForecast(ctx context.Context, dest Destination, day time.Time) (WeatherEstimate, error) {
	if r.forecast == nil {
		return WeatherEstimate{}, fmt.Errorf("%w: no forecast source", ErrSourceUnavailable)
	}

	reading, err := r.forecast.FetchForecast(ctx, dest.Coordinate, day)
	if err != nil {
		err = classifyForecastError(err)
		log.Warn("forecast fetch failed",
			zap.String("source", r.forecast.Name()),
			zap.String("destination", dest.Name),
			zap.String("kind", Kind(err)),
			zap.Error(err))
		return WeatherEstimate{}, err
	}

	est, err := FromForecast(day, reading)
	if err != nil {
		log.Warn("forecast payload incomplete",
			zap.String("source", r.forecast.Name()),
			zap.String("destination", dest.Name),
			zap.Error(err))
		return WeatherEstimate{}, err
	}
	return est, nil
}

func (r *Resolver) resolvePrediction(ctx context.Context, dest Destination, day time.Time) (WeatherEstimate, error) {
	if r.prediction == nil {
		return WeatherEstimate{}, fmt.Errorf("%w: no prediction source", ErrSourceUnavailable)
	}

	p, err := r.prediction.Predict(ctx, dest.Name, day)
	if err != nil {
		if !errors.Is(err, ErrEstimator) {
			err = fmt.Errorf("%w: %v", ErrEstimator, err)
		}
		log.Warn("prediction failed",
			zap.String("source", r.prediction.Name()),
			zap.String("destination", dest.Name),
			zap.Error(err))
		return WeatherEstimate{}, err
	}
	return FromPrediction(day, p), nil
}

func validateRequest(dest Destination, date time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(dest.Name) == "" {
		return fmt.Errorf("%w: destination name is required", ErrInvalidRequest)
	}
	return dest.Coordinate.Validate()
}

// classifyForecastError keeps taxonomy errors intact and files anything else
// (context cancellation, dial errors) under ErrTransport.
func classifyForecastError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrTransport),
		errors.Is(err, ErrEmptyResponse),
		errors.Is(err, ErrDecode):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
}
