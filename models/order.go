package models

import "time"

// OrderStatus represents all possible states of a campus food order
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	CustomerID uint        `json:"customer_id" gorm:"not null;index"`
	Customer   User        `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	VendorID   uint        `json:"vendor_id" gorm:"not null;index"`
	Vendor     User        `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	Status     OrderStatus `json:"status" gorm:"not null;default:'PENDING'"`
	Total      float64     `json:"total"`
	Items      []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	Payment    *Payment    `json:"payment,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  uint    `json:"order_id" gorm:"not null;index"`
	FoodID   uint    `json:"food_id" gorm:"not null"`
	Food     Food    `json:"food,omitempty" gorm:"foreignKey:FoodID"`
	Quantity int     `json:"quantity" gorm:"not null"`
	Price    float64 `json:"price" gorm:"not null"`    // snapshot unit price at order time
	Subtotal float64 `json:"subtotal" gorm:"not null"` // quantity * snapshot price
	Name     string  `json:"name"`                     // snapshot name
}

// PaymentStatus is a status-tracking stub, there is no gateway behind it.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

type Payment struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	OrderID   uint          `json:"order_id" gorm:"uniqueIndex;not null"`
	Method    string        `json:"method" gorm:"not null"`
	Status    PaymentStatus `json:"status" gorm:"not null;default:'PENDING'"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Rating is one per (user, order), scoped to a vendor.
type Rating struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_order"`
	OrderID   uint      `json:"order_id" gorm:"not null;uniqueIndex:idx_user_order"`
	VendorID  uint      `json:"vendor_id" gorm:"not null;index"`
	Score     int       `json:"score" gorm:"not null"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
