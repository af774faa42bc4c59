package services

import (
	"errors"
	"strings"

	"campus-eats-api/models"

	"gorm.io/gorm"
)

// CatalogService manages the shared food category set. Categories are
// created lazily on first use and never deleted in normal flow.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// GetOrCreate resolves a category by exact name, creating it if absent.
// The insert relies on the unique index on name: when two vendors race on
// first use, the loser gets a duplicate-key error and re-reads the row the
// winner created. One retry, then the conflict surfaces.
func (s *CatalogService) GetOrCreate(name string) (*models.FoodCategory, error) {
	return getOrCreateCategory(s.DB, name)
}

func getOrCreateCategory(db *gorm.DB, name string) (*models.FoodCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidation
	}

	var cat models.FoodCategory
	err := db.Where("name = ?", name).First(&cat).Error
	if err == nil {
		return &cat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cat = models.FoodCategory{Name: name}
	if err := db.Create(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race; the row exists now.
			var existing models.FoodCategory
			if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
				return nil, ErrStorageConflict
			}
			return &existing, nil
		}
		return nil, err
	}
	return &cat, nil
}
