package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleVendor  UserRole = "vendor"
	RoleAdmin   UserRole = "admin"
)

// ValidRole reports whether r is one of the closed role set.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleStudent, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null"`
	Phone        string    `json:"phone"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`

	// Vendor-only fields
	BusinessName string `json:"business_name,omitempty"`
	Logo         string `json:"logo,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
