package handlers

import (
	"net/http"

	"campus-eats-api/config"
	"campus-eats-api/middleware"
	"campus-eats-api/models"
	"campus-eats-api/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Auth *services.AuthService
	Cfg  *config.Config
}

func NewAuthHandler(auth *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Auth: auth, Cfg: cfg}
}

type RegisterRequest struct {
	Name         string          `json:"name" binding:"required"`
	Email        string          `json:"email" binding:"required,email"`
	Password     string          `json:"password" binding:"required,min=6"`
	Role         models.UserRole `json:"role" binding:"required"`
	Phone        string          `json:"phone"`
	BusinessName string          `json:"business_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: student, vendor, or admin"})
		return
	}

	user, err := h.Auth.Register(services.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		Phone:        req.Phone,
		BusinessName: req.BusinessName,
	})
	if err != nil {
		fail(c, err)
		return
	}

	token, err := middleware.GenerateToken(user, h.Cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Login authenticates a user and returns a JWT
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Auth.Authenticate(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	token, err := middleware.GenerateToken(user, h.Cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Profile returns the authenticated user's profile
func (h *AuthHandler) Profile(c *gin.Context) {
	actor := actorFrom(c, h.Auth)
	if actor == nil {
		fail(c, services.ErrUnauthenticated)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": actor})
}
