package rbac

import "context"

// Principal describes the authenticated caller for the lifetime of one
// request: verified identity plus the resolved permission document. It is
// owned by the request that created it and never shared.
type Principal struct {
	UserID      int64
	Role        string
	Permissions PermissionSet
}

type principalContextKey struct{}

// ContextWithPrincipal stores the principal in context.
func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext extracts the principal, or nil when the request has
// not passed authentication.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalContextKey{}).(*Principal)
	return p
}
