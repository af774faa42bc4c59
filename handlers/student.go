package handlers

import (
	"net/http"
	"strconv"

	"campus-eats-api/models"
	"campus-eats-api/services"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	Auth    *services.AuthService
	Menu    *services.MenuService
	Orders  *services.OrderService
	Ratings *services.RatingService
}

func NewStudentHandler(auth *services.AuthService, menu *services.MenuService, orders *services.OrderService, ratings *services.RatingService) *StudentHandler {
	return &StudentHandler{Auth: auth, Menu: menu, Orders: orders, Ratings: ratings}
}

// BrowseMenu returns all available food grouped by category
func (h *StudentHandler) BrowseMenu(c *gin.Context) {
	groups, err := h.Menu.ListAvailable()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": groups})
}

// ListVendors returns the active vendor directory with ratings
func (h *StudentHandler) ListVendors(c *gin.Context) {
	vendors, err := h.Menu.ActiveVendors()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(vendors), "vendors": vendors})
}

type CheckoutRequest struct {
	VendorID      uint   `json:"vendor_id" binding:"required"`
	PaymentMethod string `json:"payment_method"`
	Items         []struct {
		FoodID   uint `json:"food_id" binding:"required"`
		Quantity int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

// PlaceOrder creates a new order for the logged-in student
func (h *StudentHandler) PlaceOrder(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]services.CheckoutItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, services.CheckoutItem{FoodID: it.FoodID, Quantity: it.Quantity})
	}

	order, err := h.Orders.Checkout(actorFrom(c, h.Auth), req.VendorID, items, req.PaymentMethod)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// MyOrders returns all orders for the logged-in student
func (h *StudentHandler) MyOrders(c *gin.Context) {
	orders, err := h.Orders.ListForCustomer(actorFrom(c, h.Auth))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// OrderDetail returns one of the student's own orders
func (h *StudentHandler) OrderDetail(c *gin.Context) {
	orderID, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	order, err := h.Orders.OrderForCustomer(actorFrom(c, h.Auth), uint(orderID))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// CancelOrder cancels the student's own order while it is still pending
func (h *StudentHandler) CancelOrder(c *gin.Context) {
	orderID, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	order, err := h.Orders.AdvanceStatus(actorFrom(c, h.Auth), uint(orderID), models.StatusCancelled)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_id": order.ID})
}

type RatingRequest struct {
	Score   int    `json:"score" binding:"required"`
	Comment string `json:"comment"`
}

// SubmitRating rates one of the student's own orders, once
func (h *StudentHandler) SubmitRating(c *gin.Context) {
	orderID, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rating, err := h.Ratings.Submit(actorFrom(c, h.Auth), uint(orderID), req.Score, req.Comment)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Rating submitted", "rating": rating})
}
