package weather

import (
	"context"
	"time"
)

// ForecastSource fetches a single day's live forecast for a coordinate.
type ForecastSource interface {
	Name() string
	FetchForecast(ctx context.Context, coord Coordinate, date time.Time) (ForecastReading, error)
}

// PredictionSource produces a point estimate for a city on a day of the year.
type PredictionSource interface {
	Name() string
	Predict(ctx context.Context, city string, date time.Time) (Prediction, error)
}
