package repository

import (
	"fmt"

	"invoice-admin-backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the customers, invoices and users tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Invoice{},
		&models.User{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
