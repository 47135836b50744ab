package access

import (
	"fmt"

	"tablenavi/internal/domain"
)

// Route paths referenced by deny decisions. Redirect targets are computed
// here so handlers never hand-pick them per route.
const (
	PathHome      = "/"
	PathAdminHome = "/admin"

	PathMemberLogin = "/login"
	PathAdminLogin  = "/admin/login"

	PathSubscriptionCreate = "/subscription/create"
	PathSubscriptionEdit   = "/subscription/edit"

	PathMyPage       = "/user"
	PathReservations = "/reservations"
	PathFavorites    = "/favorites"
)

// LoginPathFor returns the login page of the guard an action authenticates
// against.
func LoginPathFor(guard domain.GuardKind) string {
	if guard == domain.GuardAdmin {
		return PathAdminLogin
	}
	return PathMemberLogin
}

// HomePathFor returns the landing page of the principal's own kind.
func HomePathFor(kind domain.PrincipalKind) string {
	if kind == domain.KindAdmin {
		return PathAdminHome
	}
	return PathHome
}

// RestaurantReviewsPath returns the review listing for one restaurant.
func RestaurantReviewsPath(restaurantID int64) string {
	return fmt.Sprintf("/restaurants/%d/reviews", restaurantID)
}
