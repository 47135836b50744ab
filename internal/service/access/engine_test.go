package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablenavi/internal/domain"
)

// fakeEntitlements is an in-memory EntitlementProvider with error injection.
type fakeEntitlements struct {
	subscribed map[int64]bool
	err        error
	calls      int
}

func (f *fakeEntitlements) HasActiveSubscription(_ context.Context, memberID int64) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.subscribed[memberID], nil
}

func (f *fakeEntitlements) CreateSubscription(context.Context, int64, string) error  { return nil }
func (f *fakeEntitlements) UpdatePaymentMethod(context.Context, int64, string) error { return nil }
func (f *fakeEntitlements) CancelSubscription(context.Context, int64) error          { return nil }

func newTestEngine(subscribed map[int64]bool) (*Engine, *fakeEntitlements) {
	fake := &fakeEntitlements{subscribed: subscribed}
	return NewEngine(fake, nil), fake
}

func TestDecide_GuestOnPublicAction(t *testing.T) {
	engine, _ := newTestEngine(nil)

	d, err := engine.Decide(context.Background(), ActionRestaurantIndex, domain.GuestPrincipal(), nil)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestDecide_GuestOnMemberActionRedirectsToMemberLogin(t *testing.T) {
	engine, _ := newTestEngine(nil)

	d, err := engine.Decide(context.Background(), ActionReviewIndex, domain.GuestPrincipal(), nil)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonUnauthenticated, d.Reason)
	assert.Equal(t, PathMemberLogin, d.Redirect)
}

func TestDecide_GuestOnAdminActionRedirectsToAdminLogin(t *testing.T) {
	engine, _ := newTestEngine(nil)

	d, err := engine.Decide(context.Background(), ActionAdminRestaurantIndex, domain.GuestPrincipal(), nil)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonUnauthenticated, d.Reason)
	assert.Equal(t, PathAdminLogin, d.Redirect, "the guard of the action picks the login page")
}

func TestDecide_MemberOnAdminActionRedirectsToMemberHome(t *testing.T) {
	engine, _ := newTestEngine(nil)

	d, err := engine.Decide(context.Background(), ActionAdminHome, domain.MemberPrincipal(7), nil)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonWrongPrincipalKind, d.Reason)
	assert.Equal(t, PathHome, d.Redirect, "redirect goes to the principal's own home")
}

func TestDecide_AdminOnMemberActionRedirectsToAdminHome(t *testing.T) {
	engine, _ := newTestEngine(nil)

	d, err := engine.Decide(context.Background(), ActionFavoriteIndex, domain.AdminPrincipal(1), nil)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonWrongPrincipalKind, d.Reason)
	assert.Equal(t, PathAdminHome, d.Redirect)
}

func TestDecide_AdminOnPublicPageIsWrongKind(t *testing.T) {
	// Public pages accept guests and members only; a signed-in admin is
	// sent back to the admin area.
	engine, _ := newTestEngine(nil)

	d, err := engine.Decide(context.Background(), ActionRestaurantIndex, domain.AdminPrincipal(1), nil)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonWrongPrincipalKind, d.Reason)
	assert.Equal(t, PathAdminHome, d.Redirect)
}

func TestDecide_MemberOnLoginPageIsWrongKind(t *testing.T) {
	engine, _ := newTestEngine(nil)

	d, err := engine.Decide(context.Background(), ActionMemberLogin, domain.MemberPrincipal(7), nil)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonWrongPrincipalKind, d.Reason)
	assert.Equal(t, PathHome, d.Redirect)
}

func TestDecide_NotSubscribedOnPaidActionRedirectsToSignup(t *testing.T) {
	engine, _ := newTestEngine(map[int64]bool{})

	d, err := engine.Decide(context.Background(), ActionReservationStore, domain.MemberPrincipal(7), nil)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNotEntitled, d.Reason)
	assert.Equal(t, PathSubscriptionCreate, d.Redirect)
}

func TestDecide_SubscribedOnPaidActionAllowed(t *testing.T) {
	engine, _ := newTestEngine(map[int64]bool{7: true})

	d, err := engine.Decide(context.Background(), ActionReservationStore, domain.MemberPrincipal(7), nil)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestDecide_SubscriberOnSignupPageRedirectsToEdit(t *testing.T) {
	engine, _ := newTestEngine(map[int64]bool{7: true})

	d, err := engine.Decide(context.Background(), ActionSubscriptionCreate, domain.MemberPrincipal(7), nil)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNotEntitled, d.Reason)
	assert.Equal(t, PathSubscriptionEdit, d.Redirect)
}

func TestDecide_NotSubscribedMayOpenSignup(t *testing.T) {
	engine, _ := newTestEngine(map[int64]bool{})

	d, err := engine.Decide(context.Background(), ActionSubscriptionCreate, domain.MemberPrincipal(7), nil)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestDecide_ProviderFailurePropagatesAsUnknown(t *testing.T) {
	fake := &fakeEntitlements{err: errors.New("billing api: connection refused")}
	engine := NewEngine(fake, nil)

	d, err := engine.Decide(context.Background(), ActionFavoriteStore, domain.MemberPrincipal(7), nil)
	require.Error(t, err)
	var unknown *domain.EntitlementUnknownError
	assert.ErrorAs(t, err, &unknown, "provider failure must stay distinct from allow and deny")
	assert.False(t, d.Allowed, "zero decision on error")
}

func TestDecide_NoEntitlementLookupForUngatedActions(t *testing.T) {
	engine, fake := newTestEngine(nil)

	_, err := engine.Decide(context.Background(), ActionReviewIndex, domain.MemberPrincipal(7), nil)
	require.NoError(t, err)
	assert.Zero(t, fake.calls, "actions without an entitlement requirement never call billing")
}

func TestDecide_OwnerPassesOwnershipGate(t *testing.T) {
	engine, _ := newTestEngine(map[int64]bool{7: true})
	review := &domain.Review{ID: 3, RestaurantID: 11, MemberID: 7, Score: 4, Content: "x"}

	d, err := engine.Decide(context.Background(), ActionReviewEdit, domain.MemberPrincipal(7), review)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestDecide_NonOwnerRedirectsToReviewIndexWithFlash(t *testing.T) {
	engine, _ := newTestEngine(map[int64]bool{7: true})
	review := &domain.Review{ID: 3, RestaurantID: 11, MemberID: 99, Score: 4, Content: "x"}

	d, err := engine.Decide(context.Background(), ActionReviewEdit, domain.MemberPrincipal(7), review)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNotOwner, d.Reason)
	assert.Equal(t, "/restaurants/11/reviews", d.Redirect)
	assert.Equal(t, FlashNotOwner, d.Flash)
}

func TestDecide_NonOwnerReservationRedirectsToReservations(t *testing.T) {
	engine, _ := newTestEngine(map[int64]bool{7: true})
	res := &domain.Reservation{ID: 5, MemberID: 99}

	d, err := engine.Decide(context.Background(), ActionReservationDelete, domain.MemberPrincipal(7), res)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNotOwner, d.Reason)
	assert.Equal(t, PathReservations, d.Redirect)
}

func TestDecide_ForeignProfileRedirectsToOwnPage(t *testing.T) {
	engine, _ := newTestEngine(nil)
	other := &domain.Member{ID: 99}

	d, err := engine.Decide(context.Background(), ActionProfileShow, domain.MemberPrincipal(7), other)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNotOwner, d.Reason)
	assert.Equal(t, PathMyPage, d.Redirect)
}

func TestDecide_EntitlementCheckedBeforeOwnership(t *testing.T) {
	// A lapsed subscriber editing someone else's review is routed to the
	// subscription page; the ownership failure is never reached.
	engine, _ := newTestEngine(map[int64]bool{})
	review := &domain.Review{ID: 3, RestaurantID: 11, MemberID: 99, Score: 4, Content: "x"}

	d, err := engine.Decide(context.Background(), ActionReviewEdit, domain.MemberPrincipal(7), review)
	require.NoError(t, err)
	assert.Equal(t, ReasonNotEntitled, d.Reason)
	assert.Equal(t, PathSubscriptionCreate, d.Redirect)
	assert.Empty(t, d.Flash)
}

func TestDecide_GuestCheckedBeforeEntitlement(t *testing.T) {
	fake := &fakeEntitlements{err: errors.New("billing down")}
	engine := NewEngine(fake, nil)

	// A guest on a paid action must get the login redirect even while
	// billing is unreachable.
	d, err := engine.Decide(context.Background(), ActionFavoriteStore, domain.GuestPrincipal(), nil)
	require.NoError(t, err)
	assert.Equal(t, ReasonUnauthenticated, d.Reason)
	assert.Zero(t, fake.calls)
}

func TestDecide_MissingResourceOnOwnershipGateDenies(t *testing.T) {
	engine, _ := newTestEngine(map[int64]bool{7: true})

	d, err := engine.Decide(context.Background(), ActionReviewDelete, domain.MemberPrincipal(7), nil)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNotOwner, d.Reason)
}
