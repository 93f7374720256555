package identity

import (
	"context"

	"solar_quote/internal/usecase/interfaces"
)

type agentIDKey struct{}

// WithAgentID returns a context carrying the authenticated agent id.
func WithAgentID(ctx context.Context, agentID int64) context.Context {
	return context.WithValue(ctx, agentIDKey{}, agentID)
}

// ContextProvider reads the agent id placed in the request context by the
// HTTP middleware. There is no fallback id.
type ContextProvider struct{}

var _ interfaces.IIdentityProvider = ContextProvider{}

func NewContextProvider() ContextProvider { return ContextProvider{} }

func (ContextProvider) CurrentAgentID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(agentIDKey{}).(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}
