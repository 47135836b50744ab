package access

import (
	"context"
	"log/slog"

	"tablenavi/internal/domain"
)

// FlashNotOwner is surfaced on the redirect target after an ownership
// denial.
const FlashNotOwner = "Unauthorized access."

// Engine evaluates action capability profiles against request principals.
//
// Evaluation order is fixed: authentication, principal kind, entitlement,
// ownership. Entitlement is checked before ownership so a lapsed
// subscriber touching someone else's resource is routed to the
// subscription page, not shown an ownership error.
type Engine struct {
	entitlements domain.EntitlementProvider
	logger       *slog.Logger
}

// NewEngine creates an Engine backed by the given entitlement provider.
func NewEngine(entitlements domain.EntitlementProvider, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{entitlements: entitlements, logger: logger}
}

// Decide evaluates one action for one principal. resource carries the
// owned entity for ownership-gated actions and is ignored otherwise.
//
// A non-nil error means the decision could not be made at all; the only
// such case is an unreachable billing provider, reported as a wrapped
// EntitlementUnknownError. Callers must fail the request on error, never
// treat it as an allow or a deny.
func (e *Engine) Decide(ctx context.Context, action domain.Action, principal domain.Principal, resource domain.OwnedResource) (Decision, error) {
	// 1. Authentication.
	if principal.IsGuest() && !action.AllowGuest {
		return e.deny(action, principal, Deny(ReasonUnauthenticated, LoginPathFor(action.Guard))), nil
	}

	// 2. Principal kind.
	if !action.Allows(principal.Kind) {
		return e.deny(action, principal, Deny(ReasonWrongPrincipalKind, HomePathFor(principal.Kind))), nil
	}

	// 3. Entitlement. Only members carry subscription state.
	if action.RequiresEntitlement != nil && principal.IsMember() {
		entitlement, err := e.resolveEntitlement(ctx, principal.ID)
		if err != nil {
			e.logger.Error("entitlement lookup failed",
				"action", action.Name, "member_id", principal.ID, "error", err)
			return Decision{}, err
		}
		if entitlement != *action.RequiresEntitlement {
			return e.deny(action, principal, Deny(ReasonNotEntitled, entitlementRedirect(*action.RequiresEntitlement))), nil
		}
	}

	// 4. Ownership. Strict creator equality; administrators never pass on
	// another member's behalf.
	if action.RequiresOwnershipOf != domain.ResourceNone {
		if resource == nil || resource.CreatedBy() != principal.ID {
			d := Deny(ReasonNotOwner, ownerRedirect(action.RequiresOwnershipOf, resource))
			d.Flash = FlashNotOwner
			return e.deny(action, principal, d), nil
		}
	}

	return Allow(), nil
}

// resolveEntitlement maps the provider's boolean onto the entitlement
// enum. Provider failures are wrapped so the unknown state stays distinct
// from both entitlement values.
func (e *Engine) resolveEntitlement(ctx context.Context, memberID int64) (domain.Entitlement, error) {
	subscribed, err := e.entitlements.HasActiveSubscription(ctx, memberID)
	if err != nil {
		return domain.NotSubscribed, domain.ErrEntitlementUnknown("subscription state unavailable for member %d: %v", memberID, err)
	}
	if subscribed {
		return domain.Subscribed, nil
	}
	return domain.NotSubscribed, nil
}

// entitlementRedirect picks the subscription page for an entitlement
// denial. A member lacking a subscription goes to sign-up; a subscriber
// hitting a sign-up-only page goes to subscription management.
func entitlementRedirect(required domain.Entitlement) string {
	if required == domain.Subscribed {
		return PathSubscriptionCreate
	}
	return PathSubscriptionEdit
}

// ownerRedirect returns the collection index for the denied resource kind.
func ownerRedirect(kind domain.ResourceKind, resource domain.OwnedResource) string {
	switch kind {
	case domain.ResourceReview:
		if review, ok := resource.(*domain.Review); ok {
			return RestaurantReviewsPath(review.RestaurantID)
		}
		return PathHome
	case domain.ResourceReservation:
		return PathReservations
	case domain.ResourceProfile:
		return PathMyPage
	default:
		return PathHome
	}
}

func (e *Engine) deny(action domain.Action, principal domain.Principal, d Decision) Decision {
	e.logger.Info("access denied",
		"action", action.Name,
		"principal_kind", principal.Kind.String(),
		"principal_id", principal.ID,
		"reason", d.Reason.String(),
		"redirect", d.Redirect)
	return d
}
