package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"quickbite-api/assets"
	"quickbite-api/identity"
	"quickbite-api/revenue"
)

// Dashboard is the platform-wide view: every admin with its attributed
// order count and revenue, plus all users, the full menu and the ledger.
func (h *Handler) Dashboard(c *gin.Context) {
	admins, err := h.Admins.List()
	if err != nil {
		logrus.WithError(err).Error("failed to load admins")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load admins"})
		return
	}
	users, err := h.Users.List()
	if err != nil {
		logrus.WithError(err).Error("failed to load users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	menu, err := h.Catalog.All()
	if err != nil {
		logrus.WithError(err).Error("failed to load menu")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}
	placed, err := h.Ledger.List()
	if err != nil {
		logrus.WithError(err).Error("failed to load orders")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	reports := revenue.Platform(placed, admins)
	type adminView struct {
		Username     string  `json:"username"`
		Business     string  `json:"business"`
		Category     string  `json:"category"`
		LogoURL      string  `json:"logo_url"`
		TotalOrders  int     `json:"total_orders"`
		TotalRevenue float64 `json:"total_revenue"`
	}
	adminViews := make([]adminView, 0, len(reports))
	for _, r := range reports {
		adminViews = append(adminViews, adminView{
			Username:     r.Username,
			Business:     r.Business,
			Category:     r.Category,
			LogoURL:      logoURL(r.Logo),
			TotalOrders:  r.TotalOrders,
			TotalRevenue: r.TotalRevenue,
		})
	}

	usernames := make([]string, 0, len(users))
	for _, u := range users {
		usernames = append(usernames, u.Username)
	}

	c.JSON(http.StatusOK, gin.H{
		"admins": adminViews,
		"users":  usernames,
		"menu":   menuViews(menu),
		"orders": placed,
	})
}

// AddAdmin lets the super admin create a business account directly.
func (h *Handler) AddAdmin(c *gin.Context) {
	var req AdminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logo, err := assets.GenerateLogo(h.LogoDir, req.Business)
	if err != nil {
		logrus.WithError(err).Warn("logo generation failed")
	}

	if err := h.Admins.Register(req.Username, req.Password, req.Business, req.Category, logo); err != nil {
		assets.Remove(h.LogoDir, logo)
		if errors.Is(err, identity.ErrDuplicateUsername) {
			c.JSON(http.StatusConflict, gin.H{"error": "Admin already exists."})
			return
		}
		logrus.WithError(err).Error("admin creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add admin"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Admin added successfully."})
}

// DeleteAdmin removes a business account. Unknown usernames are ignored.
func (h *Handler) DeleteAdmin(c *gin.Context) {
	if err := h.Admins.Delete(c.Param("username")); err != nil {
		logrus.WithError(err).Error("admin deletion failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete admin"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted"})
}

// DeleteUser removes a consumer account. Unknown usernames are ignored.
func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.Users.Delete(c.Param("username")); err != nil {
		logrus.WithError(err).Error("user deletion failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// DeleteMenuItem removes any item by id, regardless of owner.
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	if err := h.Catalog.SuperDelete(c.Param("id")); err != nil {
		logrus.WithError(err).Error("super delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully!"})
}
