package billing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProvider_HasActiveSubscription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/members/7/subscription", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"active": true}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "test-key", time.Second)
	active, err := p.HasActiveSubscription(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestHTTPProvider_ServerErrorIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "", time.Second)
	_, err := p.HasActiveSubscription(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestHTTPProvider_UnreachableHostErrors(t *testing.T) {
	// A closed port: the dial fails, and the caller sees an error rather
	// than a defaulted subscription state.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	p := NewHTTPProvider(srv.URL, "", 500*time.Millisecond)
	_, err := p.HasActiveSubscription(context.Background(), 7)
	require.Error(t, err)
}

func TestHTTPProvider_CreateSubscriptionSendsPaymentMethod(t *testing.T) {
	var gotMethod, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		buf := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(buf)
		gotBody = string(buf)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "", time.Second)
	require.NoError(t, p.CreateSubscription(context.Background(), 7, "pm_123"))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Contains(t, gotBody, "pm_123")
}

func TestFakeProvider_Lifecycle(t *testing.T) {
	f := NewFakeProvider()
	ctx := context.Background()

	active, err := f.HasActiveSubscription(ctx, 7)
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, f.CreateSubscription(ctx, 7, "pm_123"))
	active, err = f.HasActiveSubscription(ctx, 7)
	require.NoError(t, err)
	assert.True(t, active)

	require.NoError(t, f.CancelSubscription(ctx, 7))
	active, err = f.HasActiveSubscription(ctx, 7)
	require.NoError(t, err)
	assert.False(t, active)
}
