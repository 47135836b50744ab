package billing

import (
	"context"
	"sync"

	"tablenavi/internal/domain"
)

var _ domain.EntitlementProvider = (*FakeProvider)(nil)

// FakeProvider is an in-memory EntitlementProvider for development and
// tests. Err, when set, is returned from every call, which simulates an
// unreachable billing service.
type FakeProvider struct {
	mu         sync.Mutex
	subscribed map[int64]bool

	// Err is injected into every call when non-nil.
	Err error
}

// NewFakeProvider creates an empty FakeProvider.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{subscribed: make(map[int64]bool)}
}

// HasActiveSubscription reports the in-memory subscription state.
func (f *FakeProvider) HasActiveSubscription(_ context.Context, memberID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return false, f.Err
	}
	return f.subscribed[memberID], nil
}

// CreateSubscription marks the member subscribed.
func (f *FakeProvider) CreateSubscription(_ context.Context, memberID int64, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.subscribed[memberID] = true
	return nil
}

// UpdatePaymentMethod succeeds without side effects.
func (f *FakeProvider) UpdatePaymentMethod(_ context.Context, _ int64, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Err
}

// CancelSubscription marks the member unsubscribed.
func (f *FakeProvider) CancelSubscription(_ context.Context, memberID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	delete(f.subscribed, memberID)
	return nil
}

// SetSubscribed sets a member's subscription state directly, for tests.
func (f *FakeProvider) SetSubscribed(memberID int64, subscribed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if subscribed {
		f.subscribed[memberID] = true
	} else {
		delete(f.subscribed, memberID)
	}
}
