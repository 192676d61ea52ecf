package repository

import (
	"fmt"
	"testing"

	"invoice-admin-backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, id, name string) models.Customer {
	t.Helper()
	c := models.Customer{ID: id, Name: name, Email: name + "@example.com"}
	require.NoError(t, db.Create(&c).Error)
	return c
}
