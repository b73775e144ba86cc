package cmd

import (
	"context"
	"errors"
	"fmt"

	"harvest/internal/core/application/usecases/commands"
	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/core/domain/model/provider"
	"harvest/internal/pkg/errs"

	"github.com/google/uuid"
)

type demoUser struct {
	name     string
	phone    string
	role     provider.Role
	location string
}

var demoUsers = []demoUser{
	{name: "Arun Farmer", phone: "9876543210", role: provider.RoleFarmer, location: "Madurai"},
	{name: "Selvam Labour Team", phone: "9876543211", role: provider.RoleLabour, location: "Theni"},
	{name: "Kumar Transport", phone: "9876543212", role: provider.RoleTransport, location: "Dindigul"},
	{name: "System Admin", phone: "9999999999", role: provider.RoleAdmin, location: "Chennai"},
}

// DemoUserID derives a stable identifier from a phone number so that seeding
// again finds the users it created before.
func DemoUserID(phone string) kernel.UUID {
	id, _ := kernel.UUIDFromString(uuid.NewSHA1(uuid.NameSpaceURL, []byte("harvest:user:"+phone)).String())
	return id
}

// SeedDemoUsers registers one farmer, labour team, transport owner and admin.
// Users that already exist are left untouched.
func (c *CompositionRoot) SeedDemoUsers(ctx context.Context) error {
	handler := c.CreateRegisterProviderCommandHandler()

	for _, u := range demoUsers {
		p, err := provider.NewProvider(DemoUserID(u.phone), u.name, u.phone, u.role, u.location)
		if err != nil {
			return fmt.Errorf("demo user %s: %w", u.name, err)
		}

		cmd, err := commands.NewRegisterProviderCommand(p)
		if err != nil {
			return err
		}

		err = handler.Handle(ctx, cmd)
		switch {
		case err == nil:
			c.logger.InfoContext(ctx, "Seeded demo user", "name", u.name, "role", u.role.String(), "id", p.ID().String())
		case errors.Is(err, errs.ErrConflict):
		default:
			return fmt.Errorf("seed %s: %w", u.name, err)
		}
	}

	return nil
}
