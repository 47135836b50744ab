// Package access implements the access decision engine. Every gated
// operation runs through Engine.Decide, which evaluates the action's
// capability profile against the request principal in a fixed order and
// returns either an allow or a deny with a concrete redirect.
package access

// DenyReason classifies why a request was refused.
type DenyReason int

const (
	// ReasonNone is set on allow decisions.
	ReasonNone DenyReason = iota
	// ReasonUnauthenticated means a guest attempted a non-guest action.
	ReasonUnauthenticated
	// ReasonWrongPrincipalKind means the principal is authenticated under
	// a guard the action does not accept.
	ReasonWrongPrincipalKind
	// ReasonNotEntitled means the member's subscription state does not
	// satisfy the action's entitlement requirement.
	ReasonNotEntitled
	// ReasonNotOwner means the referenced resource was created by a
	// different member.
	ReasonNotOwner
)

// String returns a stable reason name for logging.
func (r DenyReason) String() string {
	switch r {
	case ReasonUnauthenticated:
		return "unauthenticated"
	case ReasonWrongPrincipalKind:
		return "wrong_principal_kind"
	case ReasonNotEntitled:
		return "not_entitled"
	case ReasonNotOwner:
		return "not_owner"
	default:
		return "allowed"
	}
}

// Decision is the outcome of evaluating one action for one principal.
// Denials always carry a redirect; handlers translate them into a 302
// without route-specific logic.
type Decision struct {
	Allowed  bool
	Reason   DenyReason
	Redirect string
	// Flash is an error message to surface on the redirect target, set
	// only for ownership denials.
	Flash string
}

// Allow is the single allow decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny builds a deny decision with a redirect target.
func Deny(reason DenyReason, redirect string) Decision {
	return Decision{Reason: reason, Redirect: redirect}
}
