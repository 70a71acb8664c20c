package postgres

import (
	"shop/internal/adapters/out/postgres/notificationrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables backing every repository.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&notificationrepo.NotificationDTO{},
	)
}
