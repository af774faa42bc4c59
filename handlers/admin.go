package handlers

import (
	"net/http"
	"strconv"

	"campus-eats-api/models"
	"campus-eats-api/services"
	"campus-eats-api/statemachine"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Auth   *services.AuthService
	Admin  *services.AdminService
	Menu   *services.MenuService
	Orders *services.OrderService
}

func NewAdminHandler(auth *services.AuthService, admin *services.AdminService, menu *services.MenuService, orders *services.OrderService) *AdminHandler {
	return &AdminHandler{Auth: auth, Admin: admin, Menu: menu, Orders: orders}
}

// Users returns all users, optionally filtered by role
func (h *AdminHandler) Users(c *gin.Context) {
	role := models.UserRole(c.Query("role"))
	users, err := h.Admin.ListUsers(actorFrom(c, h.Auth), role)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// SetUserActive toggles a user's active flag; admin rows cannot be disabled
func (h *AdminHandler) SetUserActive(c *gin.Context) {
	userID, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.Admin.SetUserActive(actorFrom(c, h.Auth), uint(userID), *req.IsActive)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated", "user": user})
}

// DeleteUser removes a non-admin user
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	if err := h.Admin.DeleteUser(actorFrom(c, h.Auth), uint(userID)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// Vendors returns every vendor with menu and rating aggregates
func (h *AdminHandler) Vendors(c *gin.Context) {
	vendors, err := h.Admin.ListVendors(actorFrom(c, h.Auth))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(vendors), "vendors": vendors})
}

// DeleteFood hard-deletes a food row
func (h *AdminHandler) DeleteFood(c *gin.Context) {
	foodID, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	if err := h.Menu.DeleteFood(actorFrom(c, h.Auth), uint(foodID)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food deleted"})
}

// AllOrders returns all orders with a per-status summary
func (h *AdminHandler) AllOrders(c *gin.Context) {
	orders, summary, err := h.Orders.ListAll(actorFrom(c, h.Auth))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

// UpdateOrderStatus advances any order; the legal-transition table applies
// to admins too
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.Orders.AdvanceStatus(actorFrom(c, h.Auth), uint(orderID), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Order status updated",
		"order_id":       order.ID,
		"current_status": order.Status,
	})
}

// StateMachine returns the full transition table for informational purposes
func (h *AdminHandler) StateMachine(c *gin.Context) {
	transitions := statemachine.GetAllTransitions()
	info := make([]gin.H, 0, len(transitions))
	for _, t := range transitions {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []models.OrderStatus{models.StatusCompleted, models.StatusCancelled},
		"description":     "Campus Order Lifecycle State Machine",
	})
}
