package interfaces

import "context"

//go:generate mockgen -source=identity_provider_interface.go -destination=mocks/identity_provider_mock.go -package=mock_interfaces

// IIdentityProvider resolves the agent authoring a quote.
// ok=false means the identity is unknown; callers defer the field instead of
// substituting a placeholder id.
type IIdentityProvider interface {
	CurrentAgentID(ctx context.Context) (agentID int64, ok bool)
}
