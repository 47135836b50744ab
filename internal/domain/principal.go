package domain

// PrincipalKind identifies which of the mutually exclusive identity
// contexts a request is authenticated under.
type PrincipalKind int

const (
	// KindGuest is an unauthenticated visitor.
	KindGuest PrincipalKind = iota
	// KindMember is a registered member authenticated under the member guard.
	KindMember
	// KindAdmin is an administrator authenticated under the admin guard.
	KindAdmin
)

// String returns a human-readable kind name for logging.
func (k PrincipalKind) String() string {
	switch k {
	case KindMember:
		return "member"
	case KindAdmin:
		return "admin"
	default:
		return "guest"
	}
}

// Principal is the authenticated identity of a request. Exactly one
// principal exists per request context; ID is zero for guests.
type Principal struct {
	Kind PrincipalKind
	ID   int64
}

// GuestPrincipal returns the unauthenticated principal.
func GuestPrincipal() Principal { return Principal{Kind: KindGuest} }

// MemberPrincipal returns a principal for the given member ID.
func MemberPrincipal(id int64) Principal { return Principal{Kind: KindMember, ID: id} }

// AdminPrincipal returns a principal for the given administrator ID.
func AdminPrincipal(id int64) Principal { return Principal{Kind: KindAdmin, ID: id} }

// IsGuest reports whether the principal is unauthenticated.
func (p Principal) IsGuest() bool { return p.Kind == KindGuest }

// IsMember reports whether the principal is an authenticated member.
func (p Principal) IsMember() bool { return p.Kind == KindMember }

// IsAdmin reports whether the principal is an authenticated administrator.
func (p Principal) IsAdmin() bool { return p.Kind == KindAdmin }
