package domain

import "context"

type principalKey struct{}

// WithPrincipal stores the request principal in the context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext extracts the request principal from the context.
// A context without a stored principal yields the guest principal.
func PrincipalFromContext(ctx context.Context) Principal {
	p, ok := ctx.Value(principalKey{}).(Principal)
	if !ok {
		return GuestPrincipal()
	}
	return p
}
