package services

import (
	"fmt"
	"strings"
	"testing"

	"campus-eats-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite per test. A named shared-cache
// DSN keeps every pooled connection on the same database; the pool is
// capped at one connection so concurrent test goroutines race at the
// application level, not inside sqlite's locking.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FoodCategory{},
		&models.Food{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Rating{},
	))
	return db
}

func newUser(t *testing.T, db *gorm.DB, role models.UserRole, email string) *models.User {
	t.Helper()
	user, err := NewAuthService(db).Register(RegisterInput{
		Name:     "Test " + string(role),
		Email:    email,
		Password: "secret123",
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

// newFood creates a menu item directly, bypassing the setup batch.
func newFood(t *testing.T, db *gorm.DB, vendor *models.User, category, name string, price float64) *models.Food {
	t.Helper()
	cat, err := NewCatalogService(db).GetOrCreate(category)
	require.NoError(t, err)
	food := &models.Food{
		VendorID:    vendor.ID,
		CategoryID:  cat.ID,
		Name:        name,
		Price:       price,
		IsAvailable: true,
		IsActive:    true,
	}
	require.NoError(t, db.Create(food).Error)
	return food
}
