package services

import (
	"errors"
	"sort"
	"strings"

	"campus-eats-api/models"

	"gorm.io/gorm"
)

// FixedCategorySlots are the predefined category slots shown during
// vendor onboarding; custom entries may name any further category.
var FixedCategorySlots = []string{"Main Dish", "Sauce", "Topping", "Drink"}

// MenuService owns vendor menus: the setup batch, item mutation and the
// grouped read views.
type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

// CategoryGroup is one entry of a grouped menu view. Groups are emitted in
// first-seen order of the underlying food rows, so a given call is
// deterministic.
type CategoryGroup struct {
	Category string        `json:"category"`
	Items    []models.Food `json:"items"`
}

// SetupMenu creates the vendor's initial menu as one logical batch:
// every selected predefined name plus every non-empty custom entry,
// each resolved against the shared category catalog. The whole batch
// commits or none of it does.
func (s *MenuService) SetupMenu(vendor *models.User, selections map[string][]string, custom map[string]string) ([]models.Food, error) {
	if _, err := RequireRole(vendor, models.RoleVendor); err != nil {
		return nil, err
	}

	var created []models.Food
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		add := func(categoryName, foodName string) error {
			foodName = strings.TrimSpace(foodName)
			if foodName == "" {
				return nil
			}
			cat, err := getOrCreateCategory(tx, categoryName)
			if err != nil {
				return err
			}
			food := models.Food{
				VendorID:    vendor.ID,
				CategoryID:  cat.ID,
				Name:        foodName,
				Price:       0.0,
				IsAvailable: true,
				IsActive:    true,
			}
			if err := tx.Create(&food).Error; err != nil {
				return err
			}
			food.Category = *cat
			created = append(created, food)
			return nil
		}

		// Predefined slots first, in their fixed order, then the remaining
		// selected categories, then custom entries.
		for _, slot := range FixedCategorySlots {
			for _, name := range selections[slot] {
				if err := add(slot, name); err != nil {
					return err
				}
			}
		}
		for _, category := range sortedKeys(selections) {
			if isFixedSlot(category) {
				continue
			}
			for _, name := range selections[category] {
				if err := add(category, name); err != nil {
					return err
				}
			}
		}
		for _, category := range sortedKeys(custom) {
			if err := add(category, custom[category]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// sortedKeys keeps batch insertion order independent of map iteration.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func isFixedSlot(name string) bool {
	for _, slot := range FixedCategorySlots {
		if slot == name {
			return true
		}
	}
	return false
}

// ItemUpdate carries the mutable fields of a menu item; nil means "leave".
type ItemUpdate struct {
	Price       *float64
	IsAvailable *bool
	IsActive    *bool
}

// UpdateItem mutates price/availability/active of a food. Only the owning
// vendor may do so.
func (s *MenuService) UpdateItem(vendor *models.User, foodID uint, upd ItemUpdate) (*models.Food, error) {
	if _, err := RequireRole(vendor, models.RoleVendor); err != nil {
		return nil, err
	}

	var food models.Food
	if err := s.DB.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if food.VendorID != vendor.ID {
		return nil, ErrForbidden
	}

	updates := map[string]any{}
	if upd.Price != nil {
		if *upd.Price < 0 {
			return nil, ErrValidation
		}
		updates["price"] = *upd.Price
	}
	if upd.IsAvailable != nil {
		updates["is_available"] = *upd.IsAvailable
	}
	if upd.IsActive != nil {
		updates["is_active"] = *upd.IsActive
	}
	if len(updates) > 0 {
		if err := s.DB.Model(&food).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &food, nil
}

// ListMenu returns the vendor's own menu grouped by category.
func (s *MenuService) ListMenu(vendor *models.User) ([]CategoryGroup, error) {
	if _, err := RequireRole(vendor, models.RoleVendor); err != nil {
		return nil, err
	}
	var foods []models.Food
	if err := s.DB.Preload("Category").
		Where("vendor_id = ? AND is_active = ?", vendor.ID, true).
		Order("id asc").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return groupByCategory(foods), nil
}

// ListAvailable is the student-facing view: available, active food across
// all vendors, grouped by category.
func (s *MenuService) ListAvailable() ([]CategoryGroup, error) {
	var foods []models.Food
	if err := s.DB.Preload("Category").Preload("Vendor").
		Where("is_available = ? AND is_active = ?", true, true).
		Order("id asc").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return groupByCategory(foods), nil
}

// groupByCategory folds a flat, id-ordered food slice into category groups
// in first-seen order.
func groupByCategory(foods []models.Food) []CategoryGroup {
	groups := []CategoryGroup{}
	index := map[string]int{}
	for _, f := range foods {
		name := f.Category.Name
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, CategoryGroup{Category: name})
		}
		groups[i].Items = append(groups[i].Items, f)
	}
	return groups
}

// VendorListing is one row of the student-facing vendor directory.
type VendorListing struct {
	ID           uint    `json:"id"`
	BusinessName string  `json:"business_name"`
	Name         string  `json:"name"`
	Logo         string  `json:"logo,omitempty"`
	AvgRating    float64 `json:"avg_rating"`
	Ratings      int64   `json:"ratings"`
}

// ActiveVendors lists active vendors with their rating aggregates.
func (s *MenuService) ActiveVendors() ([]VendorListing, error) {
	var vendors []models.User
	if err := s.DB.
		Where("role = ? AND is_active = ?", models.RoleVendor, true).
		Order("id asc").
		Find(&vendors).Error; err != nil {
		return nil, err
	}
	ratings := RatingService{DB: s.DB}
	out := make([]VendorListing, 0, len(vendors))
	for _, v := range vendors {
		avg, n, err := ratings.VendorAverage(v.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, VendorListing{
			ID:           v.ID,
			BusinessName: v.BusinessName,
			Name:         v.Name,
			Logo:         v.Logo,
			AvgRating:    avg,
			Ratings:      n,
		})
	}
	return out, nil
}

// DeleteFood hard-deletes a food row. Admin only.
func (s *MenuService) DeleteFood(actor *models.User, foodID uint) error {
	if _, err := RequireRole(actor, models.RoleAdmin); err != nil {
		return err
	}
	res := s.DB.Delete(&models.Food{}, foodID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
