// Package billing implements the external entitlement provider port over
// the billing service's HTTP API, plus an in-memory fake for development
// and tests.
package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tablenavi/internal/domain"
)

var _ domain.EntitlementProvider = (*HTTPProvider)(nil)

// HTTPProvider talks to the billing service's JSON API. Subscription state
// lives entirely on the billing side; nothing is cached here, so a
// cancellation on the provider takes effect on the next request.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPProvider creates an HTTPProvider for the given base URL. timeout
// bounds each request; an exhausted timeout surfaces as an
// EntitlementUnknownError from the read path.
func NewHTTPProvider(baseURL, apiKey string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// HasActiveSubscription reports the member's subscription state. Any
// transport or decoding failure is returned as an error; callers must not
// substitute a default.
func (p *HTTPProvider) HasActiveSubscription(ctx context.Context, memberID int64) (bool, error) {
	var body struct {
		Active bool `json:"active"`
	}
	err := p.do(ctx, http.MethodGet, fmt.Sprintf("/v1/members/%d/subscription", memberID), nil, &body)
	if err != nil {
		return false, err
	}
	return body.Active, nil
}

// CreateSubscription starts a subscription using the given payment method
// token.
func (p *HTTPProvider) CreateSubscription(ctx context.Context, memberID int64, paymentMethod string) error {
	payload := map[string]string{"payment_method": paymentMethod}
	return p.do(ctx, http.MethodPost, fmt.Sprintf("/v1/members/%d/subscription", memberID), payload, nil)
}

// UpdatePaymentMethod swaps the default payment method on an active
// subscription.
func (p *HTTPProvider) UpdatePaymentMethod(ctx context.Context, memberID int64, paymentMethod string) error {
	payload := map[string]string{"payment_method": paymentMethod}
	return p.do(ctx, http.MethodPut, fmt.Sprintf("/v1/members/%d/subscription/payment-method", memberID), payload, nil)
}

// CancelSubscription cancels the member's subscription immediately.
func (p *HTTPProvider) CancelSubscription(ctx context.Context, memberID int64) error {
	return p.do(ctx, http.MethodDelete, fmt.Sprintf("/v1/members/%d/subscription", memberID), nil, nil)
}

func (p *HTTPProvider) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal billing request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create billing request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("billing request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("billing returned status %d for %s %s", resp.StatusCode, method, path)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode billing response: %w", err)
		}
	}
	return nil
}
