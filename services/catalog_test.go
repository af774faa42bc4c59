package services

import (
	"sync"
	"testing"

	"campus-eats-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	first, err := svc.GetOrCreate("Drink")
	require.NoError(t, err)
	second, err := svc.GetOrCreate("Drink")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.FoodCategory{}).Where("name = ?", "Drink").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetOrCreateConcurrentFirstUse(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	ids := make([]uint, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cat, err := svc.GetOrCreate("Drink")
			errs[i] = err
			if cat != nil {
				ids[i] = cat.ID
			}
		}(i)
	}
	wg.Wait()

	for i := range errs {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}

	var count int64
	require.NoError(t, db.Model(&models.FoodCategory{}).Where("name = ?", "Drink").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetOrCreateRejectsEmptyName(t *testing.T) {
	db := newTestDB(t)
	_, err := NewCatalogService(db).GetOrCreate("   ")
	assert.Error(t, err)
}
