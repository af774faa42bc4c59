package services

import (
	"testing"

	"campus-eats-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupMenuBatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	vendor := newUser(t, db, models.RoleVendor, "canteen@campus.edu")

	foods, err := svc.SetupMenu(vendor, map[string][]string{
		"Main Dish": {"Rice"},
		"Drink":     {"Soda"},
	}, nil)
	require.NoError(t, err)
	require.Len(t, foods, 2)

	byName := map[string]models.Food{}
	for _, f := range foods {
		assert.Equal(t, 0.0, f.Price)
		assert.True(t, f.IsAvailable)
		assert.True(t, f.IsActive)
		assert.Equal(t, vendor.ID, f.VendorID)
		byName[f.Name] = f
	}
	assert.Equal(t, "Main Dish", byName["Rice"].Category.Name)
	assert.Equal(t, "Drink", byName["Soda"].Category.Name)

	var count int64
	require.NoError(t, db.Model(&models.Food{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestSetupMenuCustomEntries(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	vendor := newUser(t, db, models.RoleVendor, "custom@campus.edu")

	foods, err := svc.SetupMenu(vendor,
		map[string][]string{"Sauce": {"Ketchup"}},
		map[string]string{"Drink": "Iced Tea", "Topping": "   "})
	require.NoError(t, err)

	// blank custom entries are skipped
	require.Len(t, foods, 2)
	names := []string{foods[0].Name, foods[1].Name}
	assert.Contains(t, names, "Ketchup")
	assert.Contains(t, names, "Iced Tea")
}

func TestSetupMenuSharesCategoriesAcrossVendors(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	v1 := newUser(t, db, models.RoleVendor, "one@campus.edu")
	v2 := newUser(t, db, models.RoleVendor, "two@campus.edu")

	_, err := svc.SetupMenu(v1, map[string][]string{"Drink": {"Cola"}}, nil)
	require.NoError(t, err)
	_, err = svc.SetupMenu(v2, map[string][]string{"Drink": {"Juice"}}, nil)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.FoodCategory{}).Where("name = ?", "Drink").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSetupMenuRequiresVendorRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	student := newUser(t, db, models.RoleStudent, "stud@campus.edu")

	_, err := svc.SetupMenu(student, map[string][]string{"Drink": {"Cola"}}, nil)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.SetupMenu(nil, map[string][]string{"Drink": {"Cola"}}, nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestUpdateItemOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	owner := newUser(t, db, models.RoleVendor, "owner@campus.edu")
	other := newUser(t, db, models.RoleVendor, "other@campus.edu")
	food := newFood(t, db, owner, "Main Dish", "Noodles", 4.50)

	price := 9.99
	_, err := svc.UpdateItem(other, food.ID, ItemUpdate{Price: &price})
	assert.ErrorIs(t, err, ErrForbidden)

	var reloaded models.Food
	require.NoError(t, db.First(&reloaded, food.ID).Error)
	assert.Equal(t, 4.50, reloaded.Price)

	updated, err := svc.UpdateItem(owner, food.ID, ItemUpdate{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 9.99, updated.Price)
}

func TestUpdateItemPartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	owner := newUser(t, db, models.RoleVendor, "p@campus.edu")
	food := newFood(t, db, owner, "Drink", "Soda", 2.00)

	off := false
	_, err := svc.UpdateItem(owner, food.ID, ItemUpdate{IsAvailable: &off})
	require.NoError(t, err)

	var reloaded models.Food
	require.NoError(t, db.First(&reloaded, food.ID).Error)
	assert.False(t, reloaded.IsAvailable)
	assert.Equal(t, 2.00, reloaded.Price) // untouched

	_, err = svc.UpdateItem(owner, 99999, ItemUpdate{IsAvailable: &off})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateItemRejectsNegativePrice(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	owner := newUser(t, db, models.RoleVendor, "neg@campus.edu")
	food := newFood(t, db, owner, "Drink", "Soda", 2.00)

	bad := -1.0
	_, err := svc.UpdateItem(owner, food.ID, ItemUpdate{Price: &bad})
	assert.Error(t, err)
}

func TestListMenuGroupsInFirstSeenOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	vendor := newUser(t, db, models.RoleVendor, "grp@campus.edu")

	newFood(t, db, vendor, "Drink", "Soda", 2)
	newFood(t, db, vendor, "Main Dish", "Rice", 5)
	newFood(t, db, vendor, "Drink", "Juice", 3)

	groups, err := svc.ListMenu(vendor)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "Drink", groups[0].Category)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, "Main Dish", groups[1].Category)
	assert.Len(t, groups[1].Items, 1)
}

func TestListAvailableFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	vendor := newUser(t, db, models.RoleVendor, "avail@campus.edu")

	visible := newFood(t, db, vendor, "Main Dish", "Rice", 5)
	hidden := newFood(t, db, vendor, "Main Dish", "Stew", 6)
	retired := newFood(t, db, vendor, "Main Dish", "Pasta", 7)
	require.NoError(t, db.Model(hidden).Update("is_available", false).Error)
	require.NoError(t, db.Model(retired).Update("is_active", false).Error)

	groups, err := svc.ListAvailable()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, visible.ID, groups[0].Items[0].ID)
}

func TestDeleteFoodAdminOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	vendor := newUser(t, db, models.RoleVendor, "del@campus.edu")
	admin := newUser(t, db, models.RoleAdmin, "boss@campus.edu")
	food := newFood(t, db, vendor, "Drink", "Soda", 2)

	assert.ErrorIs(t, svc.DeleteFood(vendor, food.ID), ErrForbidden)
	require.NoError(t, svc.DeleteFood(admin, food.ID))
	assert.ErrorIs(t, svc.DeleteFood(admin, food.ID), ErrNotFound)
}
