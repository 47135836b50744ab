package domain

// Entitlement is a member's subscription tier as reported by the billing
// collaborator. It is derived per request and never persisted locally.
type Entitlement int

const (
	// NotSubscribed means the member has no active paid subscription.
	NotSubscribed Entitlement = iota
	// Subscribed means the member has an active paid subscription.
	Subscribed
)

// String returns a human-readable entitlement name for logging.
func (e Entitlement) String() string {
	if e == Subscribed {
		return "subscribed"
	}
	return "not_subscribed"
}
