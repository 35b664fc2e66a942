// Package requestid carries a per-request correlation ID through contexts so
// HTTP access logs and pipeline logs share one ID.
package requestid

import "context"

type contextKey struct{}

// Header is the HTTP header used to propagate request IDs across services.
const Header = "X-Request-ID"

// With returns a context carrying the request ID.
func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// From returns the request ID stored in ctx, or "".
func From(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
