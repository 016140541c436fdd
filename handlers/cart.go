package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"quickbite-api/catalog"
	"quickbite-api/middleware"
	"quickbite-api/orders"
)

type AddToCartRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity"`
}

// AddToCart merges the item into the session cart and returns the new
// item count for the menu badge.
func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	item, err := h.Catalog.Get(req.ItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Item not found"})
			return
		}
		logrus.WithError(err).Error("catalog lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}

	count := h.Carts.Add(middleware.GetSessionID(c), item, req.Quantity)
	c.JSON(http.StatusOK, gin.H{"success": true, "cart_count": count})
}

type OrderNowRequest struct {
	ItemID         string `json:"item_id" binding:"required"`
	RestaurantName string `json:"restaurant_name" binding:"required"`
	Quantity       int    `json:"quantity"`
}

// OrderNow appends an ad-hoc cart line carrying the caller-supplied
// restaurant name, then points the client at the cart view.
func (h *Handler) OrderNow(c *gin.Context) {
	var req OrderNowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	item, err := h.Catalog.Get(req.ItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		logrus.WithError(err).Error("catalog lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}

	h.Carts.OrderNow(middleware.GetSessionID(c), item, req.RestaurantName, req.Quantity)
	c.JSON(http.StatusOK, gin.H{"message": "Added to cart", "redirect": "/api/cart"})
}

// GetCart returns the session's cart with per-line and grand totals.
func (h *Handler) GetCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	lines, total := h.Carts.Totals(sessionID)
	c.JSON(http.StatusOK, gin.H{
		"cart_items": cartViews(lines),
		"total":      total,
		"cart_count": h.Carts.Count(sessionID),
	})
}

// RemoveItem drops the cart line at the given position. Out-of-range
// indexes are ignored, matching the lenient removal policy.
func (h *Handler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Index must be a number"})
		return
	}
	sessionID := middleware.GetSessionID(c)
	h.Carts.RemoveAt(sessionID, index)

	lines, total := h.Carts.Totals(sessionID)
	c.JSON(http.StatusOK, gin.H{
		"cart_items": cartViews(lines),
		"total":      total,
		"cart_count": h.Carts.Count(sessionID),
	})
}

// ClearCart empties the session's cart.
func (h *Handler) ClearCart(c *gin.Context) {
	h.Carts.Clear(middleware.GetSessionID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// PlaceOrder freezes the cart into the ledger and clears the session.
func (h *Handler) PlaceOrder(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	order, err := h.Ledger.Place(h.Carts.Lines(sessionID))
	if err != nil {
		if errors.Is(err, orders.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty."})
			return
		}
		logrus.WithError(err).Error("order placement failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}
	h.Carts.Clear(sessionID)

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Order placed successfully!",
		"order_id": order.ID,
		"total":    order.Total,
	})
}
