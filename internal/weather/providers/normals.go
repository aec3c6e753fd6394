package providers

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/i474232898/weather-flight/internal/weather"
)

//go:embed data/normals.json
var defaultNormalsJSON []byte

// daysPerMonth is the mean month length used to place a day between two monthly normals.
const daysPerMonth = 30.44

// Normals holds twelve monthly climatological means per city and feature.
// Each monthly value is anchored on the 15th.
type Normals struct {
	names  []string
	cities map[string]map[Feature][]float64
}

// DefaultNormals returns the dataset bundled with the binary.
func DefaultNormals() (*Normals, error) {
	return LoadNormals(bytes.NewReader(defaultNormalsJSON))
}

// LoadNormals decodes a {"City": {"temperature": [12]...}} document.
func LoadNormals(r io.Reader) (*Normals, error) {
	var raw map[string]map[Feature][]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode normals: %w", err)
	}

	n := &Normals{cities: make(map[string]map[Feature][]float64, len(raw))}
	for city, features := range raw {
		for _, f := range Features {
			if len(features[f]) != 12 {
				return nil, fmt.Errorf("normals for %s: %s needs 12 monthly values, got %d", city, f, len(features[f]))
			}
		}
		n.cities[cityKey(city)] = features
		n.names = append(n.names, city)
	}
	sort.Strings(n.names)
	return n, nil
}

// Cities returns the model vocabulary.
func (n *Normals) Cities() []string {
	out := make([]string, len(n.names))
	copy(out, n.names)
	return out
}

// Value interpolates the normal of feature for city on monthDay ("MM-dd").
func (n *Normals) Value(city string, feature Feature, monthDay string) (float64, error) {
	features, ok := n.cities[cityKey(city)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", weather.ErrUnknownCity, city)
	}
	values, ok := features[feature]
	if !ok {
		return 0, fmt.Errorf("no %s normals for %q", feature, city)
	}

	md, err := time.Parse(MonthDayLayout, monthDay)
	if err != nil {
		return 0, fmt.Errorf("invalid month-day %q: %w", monthDay, err)
	}

	pos := float64(md.Month()-1) + float64(md.Day()-15)/daysPerMonth
	lower := math.Floor(pos)
	frac := pos - lower
	i0 := (int(lower)%12 + 12) % 12
	i1 := (i0 + 1) % 12

	v := values[i0]*(1-frac) + values[i1]*frac
	return math.Round(v*100) / 100, nil
}

// NormalsEstimator estimates a single feature from climatological normals.
type NormalsEstimator struct {
	normals *Normals
	feature Feature
}

// NewNormalsEstimator creates a new NormalsEstimator.
func NewNormalsEstimator(normals *Normals, feature Feature) *NormalsEstimator {
	return &NormalsEstimator{normals: normals, feature: feature}
}

func (e *NormalsEstimator) Estimate(ctx context.Context, city, monthDay string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", errCanceled, err)
	}
	return e.normals.Value(city, e.feature, monthDay)
}

// NewNormalsPredictor wires one NormalsEstimator per feature into an EstimatorSet.
func NewNormalsPredictor(normals *Normals) *EstimatorSet {
	return NewEstimatorSet("climate-normals", Estimators{
		Temperature:   NewNormalsEstimator(normals, FeatureTemperature),
		Precipitation: NewNormalsEstimator(normals, FeaturePrecipitation),
		Humidity:      NewNormalsEstimator(normals, FeatureHumidity),
		Wind:          NewNormalsEstimator(normals, FeatureWind),
	})
}

func cityKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
