package services

import (
	"errors"

	"campus-eats-api/models"

	"gorm.io/gorm"
)

// RatingService enforces one rating per (user, order), scoped to a vendor.
type RatingService struct {
	DB *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{DB: db}
}

// Submit records a 1..5 rating for an order the user actually placed.
// The unique (user_id, order_id) index rejects a second rating.
func (s *RatingService) Submit(user *models.User, orderID uint, score int, comment string) (*models.Rating, error) {
	if _, err := RequireRole(user, models.RoleStudent); err != nil {
		return nil, err
	}
	if score < 1 || score > 5 {
		return nil, ErrInvalidScore
	}

	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if order.CustomerID != user.ID {
		return nil, ErrOrderNotOwned
	}

	rating := models.Rating{
		UserID:   user.ID,
		OrderID:  order.ID,
		VendorID: order.VendorID,
		Score:    score,
		Comment:  comment,
	}
	if err := s.DB.Create(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRating
		}
		return nil, err
	}
	return &rating, nil
}

// VendorAverage returns the mean score and count for a vendor, zero when
// unrated.
func (s *RatingService) VendorAverage(vendorID uint) (float64, int64, error) {
	var count int64
	if err := s.DB.Model(&models.Rating{}).Where("vendor_id = ?", vendorID).Count(&count).Error; err != nil {
		return 0, 0, err
	}
	if count == 0 {
		return 0, 0, nil
	}
	var avg float64
	err := s.DB.Model(&models.Rating{}).
		Select("avg(score)").
		Where("vendor_id = ?", vendorID).
		Scan(&avg).Error
	return avg, count, err
}
