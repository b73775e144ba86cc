package commands

import (
	"errors"

	"harvest/internal/core/domain/model/provider"
	"harvest/internal/pkg/guard"
)

var ErrRegisterProviderCommandIsNotConstructed = errors.New(
	"RegisterProviderCommand must be created via NewRegisterProviderCommand constructor",
)

// RegisterProviderCommand adds a user to the provider directory.
type RegisterProviderCommand struct { //nolint:recvcheck //using for validation
	provider *provider.Provider

	guard guard.ConstructorGuard
}

func NewRegisterProviderCommand(p *provider.Provider) (RegisterProviderCommand, error) {
	if err := p.Validate(); err != nil {
		return RegisterProviderCommand{}, err
	}

	return RegisterProviderCommand{
		provider: p,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterProviderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProviderCommandIsNotConstructed)
}

func (c RegisterProviderCommand) Provider() *provider.Provider {
	return c.provider
}
