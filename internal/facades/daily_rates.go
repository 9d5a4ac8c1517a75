package facades

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DailyRatesURL is the daily exchange rates feed of the Central Bank of Russia.
const DailyRatesURL = "https://www.cbr-xml-daily.ru/daily_json.js"

// Retry policy defaults.
const (
	DefaultRetries    = 3
	DefaultRetryDelay = time.Second
)

// ErrUpstreamUnavailable is returned when the rates feed could not be fetched.
var ErrUpstreamUnavailable = errors.New("exchanges server error")

// HTTPDoer is the part of *http.Client used by the facade.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DailyRatesHTTPFacade fetches the raw daily rates document over HTTP.
type DailyRatesHTTPFacade struct {
	client     HTTPDoer
	url        string
	retries    int
	retryDelay time.Duration
	log        *zap.SugaredLogger
}

// Option configures a DailyRatesHTTPFacade.
type Option func(*DailyRatesHTTPFacade)

// WithRetries sets how many times a failed fetch is repeated.
func WithRetries(n int) Option {
	return func(f *DailyRatesHTTPFacade) {
		if n >= 0 {
			f.retries = n
		}
	}
}

// WithRetryDelay sets the pause between two attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(f *DailyRatesHTTPFacade) {
		if d >= 0 {
			f.retryDelay = d
		}
	}
}

// NewDailyRatesHTTPFacade creates a new facade fetching url with client.
func NewDailyRatesHTTPFacade(client HTTPDoer, url string, log *zap.SugaredLogger, opts ...Option) *DailyRatesHTTPFacade {
	f := &DailyRatesHTTPFacade{
		client:     client,
		url:        url,
		retries:    DefaultRetries,
		retryDelay: DefaultRetryDelay,
		log:        log,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// statusError is a non-2xx upstream answer.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("HTTP Error %d: %s", e.code, http.StatusText(e.code))
}

func (e *statusError) temporary() bool {
	return e.code >= http.StatusInternalServerError || e.code == http.StatusTooManyRequests
}

// GetDailyRates returns the rates document exactly as served by the upstream.
// Transient failures are retried with a fixed delay until the retry budget is spent.
func (f *DailyRatesHTTPFacade) GetDailyRates(ctx context.Context) ([]byte, error) {
	var lastErr error

	attempts := 0
	for attempts <= f.retries {
		if attempts > 0 {
			f.log.Warnw("retrying daily rates fetch",
				"url", f.url,
				"attempt", attempts+1,
				"delay", f.retryDelay,
				"error", lastErr,
			)
			if err := sleep(ctx, f.retryDelay); err != nil {
				lastErr = err
				break
			}
		}
		attempts++

		body, err := f.fetch(ctx)
		if err == nil {
			f.log.Debugw("daily rates fetched", "url", f.url, "attempt", attempts, "size", len(body))
			return body, nil
		}
		lastErr = err

		var se *statusError
		if errors.As(err, &se) && !se.temporary() {
			break
		}
		if ctx.Err() != nil {
			break
		}
	}

	f.log.Errorw("failed to fetch daily rates", "url", f.url, "attempts", attempts, "error", lastErr)
	return nil, fmt.Errorf("%w %w, attempts %d", ErrUpstreamUnavailable, lastErr, attempts)
}

func (f *DailyRatesHTTPFacade) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &statusError{code: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
