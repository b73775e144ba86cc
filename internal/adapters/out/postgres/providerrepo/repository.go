package providerrepo

import (
	"context"
	"errors"

	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/core/domain/model/provider"
	"harvest/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProviderRepository implements ports.ProviderRepository using GORM.
type GormProviderRepository struct {
	db *gorm.DB
}

func NewGormProviderRepository(db *gorm.DB) *GormProviderRepository {
	return &GormProviderRepository{db: db}
}

// Add inserts a user. A duplicate phone number fails on the unique index.
func (r *GormProviderRepository) Add(ctx context.Context, p *provider.Provider) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("phone", p.Phone(), nil, err)
		}
		return err
	}
	return nil
}

// Get retrieves a user by ID.
func (r *GormProviderRepository) Get(ctx context.Context, id kernel.UUID) (*provider.Provider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("provider", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
