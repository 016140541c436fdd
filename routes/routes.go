package routes

import (
	"github.com/gin-gonic/gin"

	"quickbite-api/handlers"
	"quickbite-api/middleware"
	"quickbite-api/models"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// Every request gets a cart session so anonymous visitors can shop
	// before registering.
	r.Use(middleware.CartSession())

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.GET("/menu", h.Menu)

		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)
		public.POST("/admin/register", h.AdminRegister)
		public.POST("/admin/login", h.AdminLogin)
		public.POST("/superadmin/login", h.SuperLogin)
	}

	// ── Authenticated routes (any role) ────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(h.JWTSecret))
	{
		auth.GET("/profile", h.Profile)
	}

	// ── Cart & orders (session-scoped, no login required) ──────────
	cart := r.Group("/api")
	{
		cart.POST("/cart/add", h.AddToCart)
		cart.POST("/cart/order-now", h.OrderNow)
		cart.GET("/cart", h.GetCart)
		cart.DELETE("/cart/item/:index", h.RemoveItem)
		cart.DELETE("/cart", h.ClearCart)
		cart.POST("/orders", h.PlaceOrder)
	}

	// ── Business admin routes ──────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(h.JWTSecret), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/panel", h.Panel)
		admin.POST("/items", h.AddItem)
		admin.PUT("/items/:id", h.EditItem)
		admin.DELETE("/items/:id", h.DeleteItem)
	}

	// ── Super admin routes ─────────────────────────────────────────
	super := r.Group("/api/superadmin")
	super.Use(middleware.AuthRequired(h.JWTSecret), middleware.RoleRequired(models.RoleSuperAdmin))
	{
		super.GET("/dashboard", h.Dashboard)
		super.POST("/admins", h.AddAdmin)
		super.DELETE("/admins/:username", h.DeleteAdmin)
		super.DELETE("/users/:username", h.DeleteUser)
		super.DELETE("/menu/:id", h.DeleteMenuItem)
	}
}
