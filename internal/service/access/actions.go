package access

import "tablenavi/internal/domain"

// The full action catalogue. Each HTTP route is wired to exactly one of
// these profiles; the engine never sees route-specific code.

// publicAction is reachable by guests and members. Administrators are
// bounced to their own home page.
func publicAction(name string) domain.Action {
	return domain.Action{Name: name, Guard: domain.GuardMember, AllowGuest: true, AllowMember: true}
}

// guestAction is reachable only while unauthenticated (login and
// registration forms).
func guestAction(name string) domain.Action {
	return domain.Action{Name: name, Guard: domain.GuardMember, AllowGuest: true}
}

// memberAction requires a member session, with no entitlement requirement.
func memberAction(name string) domain.Action {
	return domain.Action{Name: name, Guard: domain.GuardMember, AllowMember: true}
}

// subscribedAction requires a member session with an active subscription.
func subscribedAction(name string) domain.Action {
	return domain.Action{
		Name:                name,
		Guard:               domain.GuardMember,
		AllowMember:         true,
		RequiresEntitlement: domain.EntitlementPtr(domain.Subscribed),
	}
}

// adminAction requires an administrator session.
func adminAction(name string) domain.Action {
	return domain.Action{Name: name, Guard: domain.GuardAdmin, AllowAdmin: true}
}

func withOwnership(a domain.Action, kind domain.ResourceKind) domain.Action {
	a.RequiresOwnershipOf = kind
	return a
}

// Public catalogue pages.
var (
	ActionHome            = publicAction("home")
	ActionRestaurantIndex = publicAction("restaurants.index")
	ActionRestaurantShow  = publicAction("restaurants.show")
	ActionCompanyShow     = publicAction("company.show")
	ActionTermsShow       = publicAction("terms.show")
)

// Authentication pages. Logged-in principals are sent to their own home.
var (
	ActionMemberRegister = guestAction("auth.register")
	ActionMemberLogin    = guestAction("auth.login")
	ActionAdminLogin     = domain.Action{Name: "admin.auth.login", Guard: domain.GuardAdmin, AllowGuest: true}
)

// Member account pages. Profile pages demand self-ownership.
var (
	ActionProfileShow = withOwnership(memberAction("user.show"), domain.ResourceProfile)
	ActionProfileEdit = withOwnership(memberAction("user.edit"), domain.ResourceProfile)
	ActionLogout      = memberAction("auth.logout")

	ActionReviewIndex = memberAction("reviews.index")
)

// Subscription lifecycle. Sign-up demands NotSubscribed; management
// demands Subscribed.
var (
	ActionSubscriptionCreate = domain.Action{
		Name:                "subscription.create",
		Guard:               domain.GuardMember,
		AllowMember:         true,
		RequiresEntitlement: domain.EntitlementPtr(domain.NotSubscribed),
	}
	ActionSubscriptionStore = domain.Action{
		Name:                "subscription.store",
		Guard:               domain.GuardMember,
		AllowMember:         true,
		RequiresEntitlement: domain.EntitlementPtr(domain.NotSubscribed),
	}
	ActionSubscriptionEdit   = subscribedAction("subscription.edit")
	ActionSubscriptionUpdate = subscribedAction("subscription.update")
	ActionSubscriptionCancel = subscribedAction("subscription.cancel")
	ActionSubscriptionDelete = subscribedAction("subscription.delete")
)

// Paid member features.
var (
	ActionReviewCreate = subscribedAction("reviews.create")
	ActionReviewStore  = subscribedAction("reviews.store")
	ActionReviewEdit   = withOwnership(subscribedAction("reviews.edit"), domain.ResourceReview)
	ActionReviewUpdate = withOwnership(subscribedAction("reviews.update"), domain.ResourceReview)
	ActionReviewDelete = withOwnership(subscribedAction("reviews.delete"), domain.ResourceReview)

	ActionFavoriteIndex  = subscribedAction("favorites.index")
	ActionFavoriteStore  = subscribedAction("favorites.store")
	ActionFavoriteDelete = subscribedAction("favorites.delete")

	// The reservation form lives on the restaurant detail page, so there
	// is no separate reservations.create action.
	ActionReservationIndex  = subscribedAction("reservations.index")
	ActionReservationStore  = subscribedAction("reservations.store")
	ActionReservationDelete = withOwnership(subscribedAction("reservations.delete"), domain.ResourceReservation)
)

// Administration.
var (
	ActionAdminHome             = adminAction("admin.home")
	ActionAdminLogout           = adminAction("admin.auth.logout")
	ActionAdminMemberIndex      = adminAction("admin.users.index")
	ActionAdminMemberShow       = adminAction("admin.users.show")
	ActionAdminRestaurantIndex  = adminAction("admin.restaurants.index")
	ActionAdminRestaurantShow   = adminAction("admin.restaurants.show")
	ActionAdminRestaurantCreate = adminAction("admin.restaurants.create")
	ActionAdminRestaurantStore  = adminAction("admin.restaurants.store")
	ActionAdminRestaurantEdit   = adminAction("admin.restaurants.edit")
	ActionAdminRestaurantUpdate = adminAction("admin.restaurants.update")
	ActionAdminRestaurantDelete = adminAction("admin.restaurants.delete")
	ActionAdminCategoryIndex    = adminAction("admin.categories.index")
	ActionAdminCategoryStore    = adminAction("admin.categories.store")
	ActionAdminCategoryUpdate   = adminAction("admin.categories.update")
	ActionAdminCategoryDelete   = adminAction("admin.categories.delete")
	ActionAdminCompanyShow      = adminAction("admin.company.show")
	ActionAdminCompanyEdit      = adminAction("admin.company.edit")
	ActionAdminCompanyUpdate    = adminAction("admin.company.update")
	ActionAdminTermsShow        = adminAction("admin.terms.show")
	ActionAdminTermsEdit        = adminAction("admin.terms.edit")
	ActionAdminTermsUpdate      = adminAction("admin.terms.update")
)
