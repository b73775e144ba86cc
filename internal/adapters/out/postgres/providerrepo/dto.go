// Package providerrepo keeps the provider directory in the users table.
package providerrepo

import (
	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/core/domain/model/provider"

	"github.com/google/uuid"
)

// UserDTO is the users row.
type UserDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"index;not null"`
	Phone    string    `gorm:"uniqueIndex;not null"`
	Role     string    `gorm:"size:16;not null"`
	Location string
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(p *provider.Provider) UserDTO {
	return UserDTO{
		ID:       p.ID().Bytes(),
		Name:     p.Name(),
		Phone:    p.Phone(),
		Role:     p.Role().String(),
		Location: p.Location(),
	}
}

func toDomain(dto UserDTO) (*provider.Provider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := provider.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return provider.NewProvider(id, dto.Name, dto.Phone, role, dto.Location)
}
