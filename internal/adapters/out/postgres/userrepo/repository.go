// Package userrepo reads user accounts from the shared users table. It implements
// ports.UserDirectory; account management belongs to another service.
package userrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Save upserts an account by id. Used to seed the directory.
func (r *GormUserRepository) Save(ctx context.Context, u user.User) error {
	if err := u.ID.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (user.User, error) {
	if err := id.Validate(); err != nil {
		return user.User{}, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return user.User{}, err
	}

	return toDomain(dto)
}

// ListByIDs returns the users that exist among ids; unknown ids are skipped.
func (r *GormUserRepository) ListByIDs(ctx context.Context, ids []kernel.UUID) ([]user.User, error) {
	if len(ids) == 0 {
		return []user.User{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormUserRepository) ListAdmins(ctx context.Context) ([]user.User, error) {
	return r.listByRole(ctx, true)
}

func (r *GormUserRepository) ListCustomers(ctx context.Context) ([]user.User, error) {
	return r.listByRole(ctx, false)
}

func (r *GormUserRepository) listByRole(ctx context.Context, isAdmin bool) ([]user.User, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Where("is_admin = ?", isAdmin).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}
