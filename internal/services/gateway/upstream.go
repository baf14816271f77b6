package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// Upstream wraps HTTP calls to one backing service behind its own
// circuit breaker, so a slow telemetry store cannot take the whole
// dashboard down with it.
type Upstream struct {
	name    string
	base    string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewUpstream(name, base string, timeout time.Duration, breaker *gobreaker.CircuitBreaker) *Upstream {
	return &Upstream{
		name:    name,
		base:    strings.TrimRight(strings.TrimSpace(base), "/"),
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
	}
}

// GetJSON performs a GET on base+path and decodes the JSON body into
// out. The call runs inside the breaker; when the breaker is open it
// fails immediately without touching the network.
func (u *Upstream) GetJSON(ctx context.Context, path string, out any) error {
	return u.doJSON(ctx, http.MethodGet, path, nil, out)
}

// PostJSON sends body as JSON and decodes the response into out, under
// the same breaker as GetJSON.
func (u *Upstream) PostJSON(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s encode: %w", u.name, err)
	}
	return u.doJSON(ctx, http.MethodPost, path, b, out)
}

func (u *Upstream) doJSON(ctx context.Context, method, path string, body []byte, out any) error {
	if u == nil || u.base == "" {
		return fmt.Errorf("upstream not configured")
	}
	_, err := u.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, method, u.base+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := u.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%s request: %w", u.name, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("%s status %d", u.name, resp.StatusCode)
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("%s decode: %w", u.name, err)
		}
		return nil, nil
	})
	return err
}

// State exposes the breaker state for the dashboard log line.
func (u *Upstream) State() gobreaker.State { return u.breaker.State() }

// NewBreaker builds a breaker that trips after `fails` consecutive
// failures and probes again after openMs.
func NewBreaker(name string, fails, openMs, intervalMs int) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     name,
		Interval: time.Duration(intervalMs) * time.Millisecond,
		Timeout:  time.Duration(openMs) * time.Millisecond,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= uint32(fails)
		},
	})
}
