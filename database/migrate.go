package database

import (
	"doulink_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.ParentProfile{},
		&models.DoulaProfile{},
		&models.Contract{},
		&models.Comment{},
		&models.Subscription{},
		&models.EmailOtp{},
	)
}
