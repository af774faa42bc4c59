package models

import "time"

// FoodCategory is a shared label (Main Dish, Sauce, Topping, Drink, ...).
// Rows are created lazily the first time any vendor references the name;
// the unique index keeps concurrent first-use from duplicating them.
type FoodCategory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

type Food struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	VendorID    uint         `json:"vendor_id" gorm:"not null;index"`
	Vendor      User         `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	CategoryID  uint         `json:"category_id" gorm:"not null"`
	Category    FoodCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name        string       `json:"name" gorm:"not null"`
	Price       float64      `json:"price" gorm:"not null;default:0"`
	IsAvailable bool         `json:"is_available" gorm:"not null;default:true"`
	IsActive    bool         `json:"is_active" gorm:"not null;default:true"` // soft-retired when false
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
