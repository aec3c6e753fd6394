package weather

import "errors"

var (
	// ErrInvalidRequest is returned for malformed destination/date combinations.
	ErrInvalidRequest = errors.New("invalid weather request")
	// ErrTransport is returned when the forecast service cannot be reached.
	ErrTransport = errors.New("weather service unreachable")
	// ErrEmptyResponse is returned when the forecast service answers with no payload.
	ErrEmptyResponse = errors.New("weather service returned no data")
	// ErrDecode is returned when the forecast payload does not match the expected schema.
	ErrDecode = errors.New("weather data could not be decoded")
	// ErrEstimator is returned when any prediction sub-estimator fails.
	ErrEstimator = errors.New("weather prediction failed")
	// ErrSourceUnavailable is returned when the resolver has no source for the date's horizon.
	ErrSourceUnavailable = errors.New("weather source not configured")
	// ErrUnknownCity is wrapped by estimator failures when a city is outside the model vocabulary.
	ErrUnknownCity = errors.New("city not known to prediction model")
)

// Kind returns the taxonomy name of err, or "unknown". Estimator failures win
// over the transport errors they may wrap.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEstimator):
		return "EstimatorFailure"
	case errors.Is(err, ErrInvalidRequest):
		return "InvalidRequest"
	case errors.Is(err, ErrTransport):
		return "TransportFailure"
	case errors.Is(err, ErrEmptyResponse):
		return "EmptyResponse"
	case errors.Is(err, ErrDecode):
		return "DecodeFailure"
	case errors.Is(err, ErrSourceUnavailable):
		return "SourceUnavailable"
	default:
		return "unknown"
	}
}

// Message renders err as the text shown to end users.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
