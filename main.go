package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"quickbite-api/cart"
	"quickbite-api/catalog"
	"quickbite-api/config"
	"quickbite-api/handlers"
	"quickbite-api/identity"
	"quickbite-api/models"
	"quickbite-api/orders"
	"quickbite-api/routes"
	"quickbite-api/store"
)

func main() {
	cfg := config.Load()

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	for _, dir := range []string{cfg.DataDir, cfg.UploadDir, cfg.LogoDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logrus.WithError(err).Fatalf("failed to create directory %s", dir)
		}
	}

	super, err := identity.NewSuper(cfg.SuperAdminUser, cfg.SuperAdminPass)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize super admin credential")
	}

	h := handlers.New(
		catalog.NewManager(store.NewCollection[models.MenuItem](cfg.MenuFile()), cfg.UploadDir),
		cart.NewRegistry(),
		orders.NewLedger(store.NewCollection[models.Order](cfg.OrdersFile())),
		identity.NewUsers(store.NewCollection[models.User](cfg.UsersFile())),
		identity.NewAdmins(store.NewCollection[models.Admin](cfg.AdminsFile())),
		super,
		cfg.JWTSecret,
		cfg.LogoDir,
	)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "QuickBite Food Ordering API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍔 Welcome to the QuickBite Food Ordering API",
			"menu":    "/api/menu",
			"health":  "/health",
			"roles":   []string{"user", "admin", "superadmin"},
		})
	})

	// Item images and generated business logos
	r.Static("/static/uploads", cfg.UploadDir)
	r.Static("/static/logos", cfg.LogoDir)

	routes.SetupRoutes(r, h)

	logrus.WithFields(logrus.Fields{
		"port":     cfg.Port,
		"data_dir": cfg.DataDir,
	}).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
