package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"quickbite-api/catalog"
	"quickbite-api/middleware"
	"quickbite-api/revenue"
)

// Panel is the business admin dashboard: the admin's items (optionally
// filtered by search) plus order count and revenue attributed to them.
func (h *Handler) Panel(c *gin.Context) {
	owner := middleware.GetUsername(c)
	query := c.Query("search")

	items, err := h.Catalog.ListForAdmin(owner, query)
	if err != nil {
		logrus.WithError(err).Error("failed to load admin items")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}
	placed, err := h.Ledger.List()
	if err != nil {
		logrus.WithError(err).Error("failed to load orders")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	summary := revenue.PerAdmin(owner, placed)

	c.JSON(http.StatusOK, gin.H{
		"menu":          menuViews(items),
		"total_orders":  summary.Orders,
		"total_revenue": summary.Revenue,
		"search_query":  query,
	})
}

// AddItem creates a menu item from a multipart form (name, price,
// category, image_file).
func (h *Handler) AddItem(c *gin.Context) {
	owner := middleware.GetUsername(c)

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a positive number"})
		return
	}
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	fileHeader, err := c.FormFile("image_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file selected."})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	admin, err := h.Admins.Get(owner)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin account not found"})
		return
	}

	item, err := h.Catalog.Add(catalog.AddParams{
		Name:      name,
		Price:     price,
		Category:  c.PostForm("category"),
		Owner:     owner,
		Business:  admin.Business,
		Image:     file,
		ImageName: fileHeader.Filename,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidFile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed (png, jpg, jpeg, gif)"})
			return
		}
		logrus.WithError(err).Error("failed to add menu item")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Item added successfully!",
		"item":    menuItemView{MenuItem: item, ImageURL: uploadURL(item.Image)},
	})
}

// EditItem updates name, price and category, with an optional
// replacement image in the multipart form.
func (h *Handler) EditItem(c *gin.Context) {
	owner := middleware.GetUsername(c)
	id := c.Param("id")

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a positive number"})
		return
	}
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	params := catalog.EditParams{
		Name:     name,
		Price:    price,
		Category: c.PostForm("category"),
	}
	if fileHeader, err := c.FormFile("image_file"); err == nil && fileHeader.Filename != "" {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
			return
		}
		defer file.Close()
		params.Image = file
		params.ImageName = fileHeader.Filename
	}

	item, err := h.Catalog.Edit(id, owner, params)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case errors.Is(err, catalog.ErrInvalidFile):
			c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed (png, jpg, jpeg, gif)"})
		default:
			logrus.WithError(err).Error("failed to edit menu item")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Item updated successfully!",
		"item":    menuItemView{MenuItem: item, ImageURL: uploadURL(item.Image)},
	})
}

// DeleteItem removes the admin's item and its image file.
func (h *Handler) DeleteItem(c *gin.Context) {
	owner := middleware.GetUsername(c)
	id := c.Param("id")

	if err := h.Catalog.Delete(id, owner); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		logrus.WithError(err).Error("failed to delete menu item")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}
