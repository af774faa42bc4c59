package services

import (
	"testing"

	"campus-eats-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersRoleFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	admin := newUser(t, db, models.RoleAdmin, "a@campus.edu")
	newUser(t, db, models.RoleStudent, "s@campus.edu")
	newUser(t, db, models.RoleVendor, "v@campus.edu")

	all, err := svc.ListUsers(admin, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	vendors, err := svc.ListUsers(admin, models.RoleVendor)
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "v@campus.edu", vendors[0].Email)

	_, err = svc.ListUsers(nil, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestDisableUserBlocksLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	admin := newUser(t, db, models.RoleAdmin, "a@campus.edu")
	student := newUser(t, db, models.RoleStudent, "s@campus.edu")

	updated, err := svc.SetUserActive(admin, student.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	_, err = NewAuthService(db).Authenticate("s@campus.edu", "secret123")
	assert.ErrorIs(t, err, ErrAccountDisabled)

	// and back on again
	updated, err = svc.SetUserActive(admin, student.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
}

func TestAdminAccountsAreProtected(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	admin := newUser(t, db, models.RoleAdmin, "a@campus.edu")
	peer := newUser(t, db, models.RoleAdmin, "b@campus.edu")

	_, err := svc.SetUserActive(admin, peer.ID, false)
	assert.ErrorIs(t, err, ErrAdminProtected)
	_, err = svc.SetUserActive(admin, admin.ID, false)
	assert.ErrorIs(t, err, ErrAdminProtected)

	assert.ErrorIs(t, svc.DeleteUser(admin, peer.ID), ErrAdminProtected)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestDeleteNonAdminUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	admin := newUser(t, db, models.RoleAdmin, "a@campus.edu")
	student := newUser(t, db, models.RoleStudent, "s@campus.edu")

	require.NoError(t, svc.DeleteUser(admin, student.ID))
	assert.ErrorIs(t, svc.DeleteUser(admin, student.ID), ErrNotFound)

	assert.ErrorIs(t, svc.DeleteUser(student, admin.ID), ErrForbidden)
}

func TestListVendorsAggregates(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	admin := newUser(t, db, models.RoleAdmin, "a@campus.edu")
	vendor := newUser(t, db, models.RoleVendor, "v@campus.edu")
	student := newUser(t, db, models.RoleStudent, "s@campus.edu")

	newFood(t, db, vendor, "Main Dish", "Rice", 5)
	order := placeOrder(t, db, student, vendor)
	_, err := NewRatingService(db).Submit(student, order.ID, 5, "")
	require.NoError(t, err)

	overview, err := svc.ListVendors(admin)
	require.NoError(t, err)
	require.Len(t, overview, 1)
	assert.Equal(t, vendor.ID, overview[0].Vendor.ID)
	assert.Equal(t, int64(2), overview[0].MenuCount) // Rice + placeOrder's Rice
	assert.Equal(t, int64(1), overview[0].Ratings)
	assert.InDelta(t, 5.0, overview[0].AvgRating, 0.001)
}
