package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"

	"campus-eats-api/config"
	"campus-eats-api/models"
	"campus-eats-api/services"
	"campus-eats-api/utils"

	"github.com/gin-gonic/gin"
)

type VendorHandler struct {
	Auth   *services.AuthService
	Menu   *services.MenuService
	Orders *services.OrderService
	Cfg    *config.Config
}

func NewVendorHandler(auth *services.AuthService, menu *services.MenuService, orders *services.OrderService, cfg *config.Config) *VendorHandler {
	return &VendorHandler{Auth: auth, Menu: menu, Orders: orders, Cfg: cfg}
}

type SetupMenuRequest struct {
	Selections map[string][]string `json:"selections" binding:"required"`
	Custom     map[string]string   `json:"custom"`
}

// SetupMenu creates the vendor's initial menu as one batch
func (h *VendorHandler) SetupMenu(c *gin.Context) {
	var req SetupMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	foods, err := h.Menu.SetupMenu(actorFrom(c, h.Auth), req.Selections, req.Custom)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu created", "count": len(foods), "items": foods})
}

// ListMenu returns the vendor's own menu grouped by category
func (h *VendorHandler) ListMenu(c *gin.Context) {
	groups, err := h.Menu.ListMenu(actorFrom(c, h.Auth))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": groups})
}

type UpdateMenuItemRequest struct {
	Price       *float64 `json:"price"`
	IsAvailable *bool    `json:"is_available"`
	IsActive    *bool    `json:"is_active"`
}

// UpdateMenuItem mutates price/availability of an owned menu item
func (h *VendorHandler) UpdateMenuItem(c *gin.Context) {
	itemID, _ := strconv.ParseUint(c.Param("itemId"), 10, 32)
	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	food, err := h.Menu.UpdateItem(actorFrom(c, h.Auth), uint(itemID), services.ItemUpdate{
		Price:       req.Price,
		IsAvailable: req.IsAvailable,
		IsActive:    req.IsActive,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": food})
}

// UploadLogo stores the vendor's logo image and persists its path
func (h *VendorHandler) UploadLogo(c *gin.Context) {
	actor := actorFrom(c, h.Auth)
	if _, err := services.RequireRole(actor, models.RoleVendor); err != nil {
		fail(c, err)
		return
	}

	file, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "logo file required"})
		return
	}
	name, err := utils.LogoFilename(actor.Email, file.Filename)
	if err != nil {
		fail(c, err)
		return
	}

	dst := filepath.Join(h.Cfg.UploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store logo"})
		return
	}
	if err := h.Auth.DB.Model(actor).Update("logo", dst).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save logo reference"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logo uploaded", "logo": dst})
}

// IncomingOrders returns the vendor's incoming orders, optionally by status
func (h *VendorHandler) IncomingOrders(c *gin.Context) {
	status := models.OrderStatus(c.Query("status"))
	orders, err := h.Orders.ListForVendor(actorFrom(c, h.Auth), status)
	if err != nil {
		fail(c, err)
		return
	}
	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}
	c.JSON(http.StatusOK, gin.H{"order_summary": summary, "count": len(orders), "orders": orders})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus advances an order through the state machine
func (h *VendorHandler) UpdateOrderStatus(c *gin.Context) {
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

type UpdatePaymentRequest struct {
	Status models.PaymentStatus `json:"status" binding:"required"`
}

// UpdatePayment marks an order's payment record paid or failed
func (h *VendorHandler) UpdatePayment(c *gin.Context) {
	orderID, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment, err := h.Orders.UpdatePayment(actorFrom(c, h.Auth), uint(orderID), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment updated", "payment": payment})
}
