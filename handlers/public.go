package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"quickbite-api/middleware"
)

// Menu returns the full catalog plus the caller's cart badge count.
func (h *Handler) Menu(c *gin.Context) {
	items, err := h.Catalog.All()
	if err != nil {
		logrus.WithError(err).Error("failed to load menu")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":      len(items),
		"menu":       menuViews(items),
		"cart_count": h.Carts.Count(middleware.GetSessionID(c)),
	})
}
