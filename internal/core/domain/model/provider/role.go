package provider

import (
	"fmt"

	"harvest/internal/pkg/errs"
)

// Role is the capacity a user acts in.
type Role string

const (
	RoleFarmer    Role = "farmer"
	RoleLabour    Role = "labour"
	RoleTransport Role = "transport"
	RoleAdmin     Role = "admin"
)

// ParseRole accepts the four known role names.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case RoleFarmer, RoleLabour, RoleTransport, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
