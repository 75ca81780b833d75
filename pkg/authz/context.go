package authz

import "context"

// roleCtxKey is the context key for the caller's role.
type roleCtxKey struct{}

// SetRoleToContext stores the caller's role in the context. The identity
// layer calls this once per request after authentication.
func SetRoleToContext(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleCtxKey{}, role)
}

// GetRoleFromContext retrieves the caller's role from the context.
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleCtxKey{}).(string)
	return role, ok
}
