package weather

import "sync/atomic"

// Result is the outcome of one resolve call: an estimate or an error, never both.
type Result struct {
	estimate WeatherEstimate
	err      error
}

func newResult(est WeatherEstimate, err error) Result {
	if err != nil {
		return Result{err: err}
	}
	return Result{estimate: est}
}

// Estimate returns the estimate and true on success.
func (r Result) Estimate() (WeatherEstimate, bool) {
	if r.err != nil {
		return WeatherEstimate{}, false
	}
	return r.estimate, true
}

// Err returns the failure, or nil on success.
func (r Result) Err() error {
	return r.err
}

// Message returns the user-facing error text, or "" on success.
func (r Result) Message() string {
	return Message(r.err)
}

// completion hands a single Result to a buffered channel and closes it.
type completion struct {
	ch        chan Result
	delivered atomic.Bool
}

func newCompletion() *completion {
	return &completion{ch: make(chan Result, 1)}
}

// deliver panics if called twice for the same request.
func (c *completion) deliver(res Result) {
	if !c.delivered.CompareAndSwap(false, true) {
		panic("weather: resolve completion delivered more than once")
	}
	c.ch <- res
	close(c.ch)
}
