package services

import (
	"errors"

	"campus-eats-api/models"
	"campus-eats-api/statemachine"

	"gorm.io/gorm"
)

// OrderService owns checkout, the status lifecycle and order listings.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

type CheckoutItem struct {
	FoodID   uint
	Quantity int
}

// Checkout places an order for a student against one vendor. Items snapshot
// the food's unit price so later price changes never touch past orders.
// Order, items and the payment stub commit in one transaction.
func (s *OrderService) Checkout(student *models.User, vendorID uint, items []CheckoutItem, paymentMethod string) (*models.Order, error) {
	if _, err := RequireRole(student, models.RoleStudent); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrValidation
	}
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	var vendor models.User
	if err := s.DB.Where("id = ? AND role = ?", vendorID, models.RoleVendor).First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !vendor.IsActive {
		return nil, ErrNotFound
	}

	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var orderItems []models.OrderItem
		var total float64

		for _, it := range items {
			if it.Quantity < 1 {
				return ErrValidation
			}
			var food models.Food
			if err := tx.First(&food, it.FoodID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
			if food.VendorID != vendorID {
				return ErrForbidden
			}
			if !food.IsAvailable || !food.IsActive {
				return ErrNotFound
			}
			subtotal := food.Price * float64(it.Quantity)
			total += subtotal
			orderItems = append(orderItems, models.OrderItem{
				FoodID:   food.ID,
				Quantity: it.Quantity,
				Price:    food.Price,
				Subtotal: subtotal,
				Name:     food.Name,
			})
		}

		order = models.Order{
			CustomerID: student.ID,
			VendorID:   vendorID,
			Status:     models.StatusPending,
			Total:      total,
			Items:      orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		payment := models.Payment{
			OrderID: order.ID,
			Method:  paymentMethod,
			Status:  models.PaymentPending,
		}
		if err := tx.Create(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrStorageConflict
			}
			return err
		}
		order.Payment = &payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// AdvanceStatus moves an order to a new status. The owning vendor and any
// admin may advance; a student may only cancel their own pending order.
// The update is a guarded compare-and-set on the current status, so a
// concurrent transition loses cleanly instead of double-applying.
func (s *OrderService) AdvanceStatus(actor *models.User, orderID uint, next models.OrderStatus) (*models.Order, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}

	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	switch actor.Role {
	case models.RoleAdmin:
		// full authority over the table below
	case models.RoleVendor:
		if order.VendorID != actor.ID {
			return nil, ErrForbidden
		}
	case models.RoleStudent:
		if order.CustomerID != actor.ID {
			return nil, ErrForbidden
		}
	default:
		return nil, ErrForbidden
	}

	if err := statemachine.CanTransition(order.Status, next, string(actor.Role)); err != nil {
		return nil, ErrInvalidTransition
	}

	res := s.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, order.Status).
		Update("status", next)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// someone else transitioned the order first
		return nil, ErrInvalidTransition
	}
	order.Status = next
	return &order, nil
}

// OrderForCustomer loads one order with items and payment, owner-gated.
func (s *OrderService) OrderForCustomer(student *models.User, orderID uint) (*models.Order, error) {
	if _, err := RequireRole(student, models.RoleStudent); err != nil {
		return nil, err
	}
	var order models.Order
	if err := s.DB.Preload("Items").Preload("Payment").Preload("Vendor").
		First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if order.CustomerID != student.ID {
		return nil, ErrOrderNotOwned
	}
	return &order, nil
}

// ListForCustomer returns the student's own orders, newest first.
func (s *OrderService) ListForCustomer(student *models.User) ([]models.Order, error) {
	if _, err := RequireRole(student, models.RoleStudent); err != nil {
		return nil, err
	}
	var orders []models.Order
	err := s.DB.Preload("Items").Preload("Payment").
		Where("customer_id = ?", student.ID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// ListForVendor returns the vendor's incoming orders, optionally filtered
// by status, newest first.
func (s *OrderService) ListForVendor(vendor *models.User, status models.OrderStatus) ([]models.Order, error) {
	if _, err := RequireRole(vendor, models.RoleVendor); err != nil {
		return nil, err
	}
	query := s.DB.Preload("Items").Preload("Payment").Preload("Customer").
		Where("vendor_id = ?", vendor.ID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var orders []models.Order
	err := query.Order("created_at desc").Find(&orders).Error
	return orders, err
}

// ListAll returns every order plus a per-status summary. Admin only.
func (s *OrderService) ListAll(actor *models.User) ([]models.Order, map[string]int, error) {
	if _, err := RequireRole(actor, models.RoleAdmin); err != nil {
		return nil, nil, err
	}
	var orders []models.Order
	if err := s.DB.Preload("Items").Preload("Payment").
		Preload("Customer").Preload("Vendor").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, nil, err
	}
	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}
	return orders, summary, nil
}

// UpdatePayment sets the payment status of an order. The owning vendor or
// an admin may do so.
func (s *OrderService) UpdatePayment(actor *models.User, orderID uint, status models.PaymentStatus) (*models.Payment, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	switch status {
	case models.PaymentPending, models.PaymentPaid, models.PaymentFailed:
	default:
		return nil, ErrValidation
	}

	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if actor.Role != models.RoleAdmin && !(actor.Role == models.RoleVendor && order.VendorID == actor.ID) {
		return nil, ErrForbidden
	}

	var payment models.Payment
	if err := s.DB.Where("order_id = ?", order.ID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.DB.Model(&payment).Update("status", status).Error; err != nil {
		return nil, err
	}
	payment.Status = status
	return &payment, nil
}
