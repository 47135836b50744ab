package domain

// GuardKind names the credential store an action authenticates against.
// Each guard has its own login page; a request authenticated under one
// guard is never treated as authenticated under the other.
type GuardKind int

const (
	// GuardMember is the member-side session guard.
	GuardMember GuardKind = iota
	// GuardAdmin is the administrator session guard.
	GuardAdmin
)

// ResourceKind identifies the type of an owned resource referenced by an
// ownership-gated action.
type ResourceKind int

const (
	// ResourceNone means the action references no owned resource.
	ResourceNone ResourceKind = iota
	// ResourceReview is a member-authored review.
	ResourceReview
	// ResourceReservation is a member-created reservation.
	ResourceReservation
	// ResourceProfile is the member's own account profile.
	ResourceProfile
)

// OwnedResource is any entity carrying a creating-member attribute.
// Ownership is strictly creator equality; administrators have no override.
type OwnedResource interface {
	CreatedBy() int64
}

// Action is a named operation with a fixed required-capability profile.
// The full set is enumerated at wiring time; the decision engine evaluates
// a profile, never route-specific code.
type Action struct {
	Name string

	// Guard selects which login page an unauthenticated principal is sent to.
	Guard GuardKind

	// AllowGuest, AllowMember, and AllowAdmin describe the principal kinds
	// permitted to perform the action.
	AllowGuest  bool
	AllowMember bool
	AllowAdmin  bool

	// RequiresEntitlement, when non-nil, is the entitlement the member must
	// hold. Subscription sign-up requires NotSubscribed; the paid features
	// require Subscribed.
	RequiresEntitlement *Entitlement

	// RequiresOwnershipOf, when not ResourceNone, demands that the supplied
	// resource was created by the acting member.
	RequiresOwnershipOf ResourceKind
}

// Allows reports whether the given principal kind may perform the action.
func (a Action) Allows(kind PrincipalKind) bool {
	switch kind {
	case KindMember:
		return a.AllowMember
	case KindAdmin:
		return a.AllowAdmin
	default:
		return a.AllowGuest
	}
}

// EntitlementPtr is a convenience for building action tables.
func EntitlementPtr(e Entitlement) *Entitlement { return &e }
