package routes

import (
	"campus-eats-api/config"
	"campus-eats-api/handlers"
	"campus-eats-api/middleware"
	"campus-eats-api/models"
	"campus-eats-api/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	db := config.DB

	authSvc := services.NewAuthService(db)
	menuSvc := services.NewMenuService(db)
	orderSvc := services.NewOrderService(db)
	ratingSvc := services.NewRatingService(db)
	adminSvc := services.NewAdminService(db)

	authH := handlers.NewAuthHandler(authSvc, cfg)
	studentH := handlers.NewStudentHandler(authSvc, menuSvc, orderSvc, ratingSvc)
	vendorH := handlers.NewVendorHandler(authSvc, menuSvc, orderSvc, cfg)
	adminH := handlers.NewAdminHandler(authSvc, adminSvc, menuSvc, orderSvc)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", authH.Register)
		public.POST("/auth/login", authH.Login)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(cfg))
	{
		auth.GET("/profile", authH.Profile)
	}

	// ── Student routes ─────────────────────────────────────────────
	student := r.Group("/api/student")
	student.Use(middleware.AuthRequired(cfg), middleware.RoleRequired(models.RoleStudent))
	{
		student.GET("/menu", studentH.BrowseMenu)
		student.GET("/vendors", studentH.ListVendors)
		student.POST("/orders", studentH.PlaceOrder)
		student.GET("/orders", studentH.MyOrders)
		student.GET("/orders/:id", studentH.OrderDetail)
		student.PUT("/orders/:id/cancel", studentH.CancelOrder)
		student.POST("/orders/:id/rating", studentH.SubmitRating)
	}

	// ── Vendor routes ──────────────────────────────────────────────
	vendor := r.Group("/api/vendor")
	vendor.Use(middleware.AuthRequired(cfg), middleware.RoleRequired(models.RoleVendor))
	{
		vendor.POST("/menu/setup", vendorH.SetupMenu)
		vendor.GET("/menu", vendorH.ListMenu)
		vendor.PUT("/menu/:itemId", vendorH.UpdateMenuItem)
		vendor.POST("/logo", vendorH.UploadLogo)

		vendor.GET("/orders", vendorH.IncomingOrders)
		vendor.PUT("/orders/:id/status", vendorH.UpdateOrderStatus)
		vendor.PUT("/orders/:id/payment", vendorH.UpdatePayment)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(cfg), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/users", adminH.Users)
		admin.PUT("/users/:id/active", adminH.SetUserActive)
		admin.DELETE("/users/:id", adminH.DeleteUser)
		admin.GET("/vendors", adminH.Vendors)
		admin.DELETE("/food/:id", adminH.DeleteFood)
		admin.GET("/orders", adminH.AllOrders)
		admin.PUT("/orders/:id/status", adminH.UpdateOrderStatus)
		admin.GET("/state-machine", adminH.StateMachine)
	}
}
