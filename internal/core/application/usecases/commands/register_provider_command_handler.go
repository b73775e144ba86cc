package commands

import (
	"context"
	"errors"

	"harvest/internal/pkg/errs"
)

// RegisterProviderCommandHandler stores a provider unless one with the same
// identifier already exists, in which case an *errs.ConflictError is returned.
type RegisterProviderCommandHandler struct {
	uowFactory ProviderUoWFactory
}

func NewRegisterProviderCommandHandler(uowFactory ProviderUoWFactory) RegisterProviderCommandHandler {
	return RegisterProviderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RegisterProviderCommandHandler) Handle(ctx context.Context, command RegisterProviderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	providers := uow.ProviderRepository()
	p := command.Provider()

	_, err := providers.Get(ctx, p.ID())
	switch {
	case err == nil:
		return errs.NewConflictError("provider", p.ID().String(), nil)
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = providers.Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
