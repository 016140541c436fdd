package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"quickbite-api/assets"
	"quickbite-api/identity"
	"quickbite-api/middleware"
	"quickbite-api/models"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Confirm  string `json:"confirm" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a consumer account.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Password != req.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	if err := h.Users.Register(req.Username, req.Password); err != nil {
		if errors.Is(err, identity.ErrDuplicateUsername) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
			return
		}
		logrus.WithError(err).Error("user registration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful! Please login."})
}

// Login authenticates a consumer and returns a JWT.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.Authenticate(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(user.Username, models.RoleUser, h.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    gin.H{"username": user.Username, "role": models.RoleUser},
	})
}

type AdminRegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Business string `json:"business" binding:"required"`
	Category string `json:"category"`
}

// AdminRegister creates a business account and generates its logo.
func (h *Handler) AdminRegister(c *gin.Context) {
	var req AdminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logo, err := assets.GenerateLogo(h.LogoDir, req.Business)
	if err != nil {
		// cosmetic, registration proceeds without a logo
		logrus.WithError(err).Warn("logo generation failed")
	}

	if err := h.Admins.Register(req.Username, req.Password, req.Business, req.Category, logo); err != nil {
		assets.Remove(h.LogoDir, logo)
		if errors.Is(err, identity.ErrDuplicateUsername) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
			return
		}
		logrus.WithError(err).Error("admin registration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register admin"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Admin registered successfully!"})
}

// AdminLogin authenticates a business admin and returns a JWT plus the
// admin's business profile.
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.Admins.Authenticate(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(admin.Username, models.RoleAdmin, h.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"admin": gin.H{
			"username": admin.Username,
			"business": admin.Business,
			"category": admin.Category,
			"logo_url": logoURL(admin.Logo),
		},
	})
}

// Profile returns the authenticated caller's identity; business admins
// also get their business details.
func (h *Handler) Profile(c *gin.Context) {
	username := middleware.GetUsername(c)
	role := middleware.GetRole(c)

	resp := gin.H{"username": username, "role": role}
	if role == models.RoleAdmin {
		if admin, err := h.Admins.Get(username); err == nil {
			resp["business"] = admin.Business
			resp["category"] = admin.Category
			resp["logo_url"] = logoURL(admin.Logo)
		}
	}
	c.JSON(http.StatusOK, gin.H{"user": resp})
}

// SuperLogin authenticates against the configuration-supplied super-admin
// credential.
func (h *Handler) SuperLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.Super.Authenticate(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(h.Super.Username(), models.RoleSuperAdmin, h.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}
