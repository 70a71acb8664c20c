package userrepo

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO mirrors the columns of the accounts table that this service reads.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	IsAdmin   bool      `gorm:"index;not null;default:false"`
	PushToken string
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u user.User) UserDTO {
	return UserDTO{
		ID:        u.ID.Bytes(),
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		PushToken: u.PushToken,
	}
}

func toDomain(dto UserDTO) (user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return user.User{}, err
	}

	return user.User{
		ID:        id,
		Name:      dto.Name,
		Email:     dto.Email,
		IsAdmin:   dto.IsAdmin,
		PushToken: dto.PushToken,
	}, nil
}

func toDomainList(dtos []UserDTO) ([]user.User, error) {
	users := make([]user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
