package services

import (
	"errors"

	"campus-eats-api/models"

	"gorm.io/gorm"
)

// AdminService covers user oversight: listings, the active toggle and
// deletion. Admin rows are protected from both.
type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

// ListUsers returns all users, optionally filtered by role.
func (s *AdminService) ListUsers(actor *models.User, role models.UserRole) ([]models.User, error) {
	if _, err := RequireRole(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	query := s.DB.Model(&models.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	var users []models.User
	err := query.Order("id asc").Find(&users).Error
	return users, err
}

// VendorOverview is the admin vendor listing row.
type VendorOverview struct {
	Vendor    models.User `json:"vendor"`
	MenuCount int64       `json:"menu_count"`
	AvgRating float64     `json:"avg_rating"`
	Ratings   int64       `json:"ratings"`
}

// ListVendors returns every vendor with menu size and rating aggregates.
func (s *AdminService) ListVendors(actor *models.User) ([]VendorOverview, error) {
	if _, err := RequireRole(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	var vendors []models.User
	if err := s.DB.Where("role = ?", models.RoleVendor).Order("id asc").Find(&vendors).Error; err != nil {
		return nil, err
	}
	ratings := RatingService{DB: s.DB}
	out := make([]VendorOverview, 0, len(vendors))
	for _, v := range vendors {
		var menuCount int64
		if err := s.DB.Model(&models.Food{}).
			Where("vendor_id = ? AND is_active = ?", v.ID, true).
			Count(&menuCount).Error; err != nil {
			return nil, err
		}
		avg, n, err := ratings.VendorAverage(v.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, VendorOverview{Vendor: v, MenuCount: menuCount, AvgRating: avg, Ratings: n})
	}
	return out, nil
}

// SetUserActive toggles is_active. Disabling any admin account is a policy
// rejection, not an error in the store.
func (s *AdminService) SetUserActive(actor *models.User, userID uint, active bool) (*models.User, error) {
	if _, err := RequireRole(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if user.Role == models.RoleAdmin && !active {
		return nil, ErrAdminProtected
	}
	if err := s.DB.Model(&user).Update("is_active", active).Error; err != nil {
		return nil, err
	}
	user.IsActive = active
	return &user, nil
}

// DeleteUser hard-deletes a non-admin user. Admin rows are never deleted.
func (s *AdminService) DeleteUser(actor *models.User, userID uint) error {
	if _, err := RequireRole(actor, models.RoleAdmin); err != nil {
		return err
	}
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if user.Role == models.RoleAdmin {
		return ErrAdminProtected
	}
	return s.DB.Delete(&user).Error
}
