package provider

import (
	"errors"
	"strings"

	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/pkg/errs"
)

var ErrProviderIsNotConstructed = errors.New("Provider must be created via NewProvider constructor")

// Provider is a user as far as jobs are concerned: an identifier plus the
// display attributes shown next to an accepted track. Credentials live
// elsewhere.
type Provider struct {
	id       kernel.UUID
	name     string
	phone    string
	role     Role
	location string

	isConstructed bool
}

// NewProvider validates and builds a Provider. Location is optional.
func NewProvider(id kernel.UUID, name, phone string, role Role, location string) (*Provider, error) {
	p := &Provider{
		location:      strings.TrimSpace(location),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPhone(phone),
		p.setRole(role),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Provider) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProviderIsNotConstructed
	}
	return nil
}

func (p *Provider) ID() kernel.UUID {
	return p.id
}

func (p *Provider) Name() string {
	return p.name
}

func (p *Provider) Phone() string {
	return p.phone
}

func (p *Provider) Role() Role {
	return p.role
}

func (p *Provider) Location() string {
	return p.location
}

func (p *Provider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Provider) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Provider) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	p.phone = phone
	return nil
}

func (p *Provider) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}
