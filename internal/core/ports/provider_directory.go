package ports

import (
	"context"

	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/core/domain/model/provider"
)

// ProviderDirectory looks up users by identifier.
type ProviderDirectory interface {
	// Get returns the provider or an *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*provider.Provider, error)
}

// ProviderRepository stores users in the directory.
type ProviderRepository interface {
	ProviderDirectory

	Add(ctx context.Context, p *provider.Provider) error
}
