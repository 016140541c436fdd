// Package handlers adapts HTTP requests onto the core operations:
// cart engine, catalog manager, order ledger, revenue aggregator and the
// identity stores. Handlers translate domain errors to status codes and
// resolve stored filenames to URLs at render time.
package handlers

import (
	"quickbite-api/cart"
	"quickbite-api/catalog"
	"quickbite-api/identity"
	"quickbite-api/models"
	"quickbite-api/orders"
)

type Handler struct {
	Catalog *catalog.Manager
	Carts   *cart.Registry
	Ledger  *orders.Ledger
	Users   *identity.Users
	Admins  *identity.Admins
	Super   *identity.Super

	JWTSecret []byte
	LogoDir   string
}

func New(cat *catalog.Manager, carts *cart.Registry, ledger *orders.Ledger,
	users *identity.Users, admins *identity.Admins, super *identity.Super,
	jwtSecret []byte, logoDir string) *Handler {
	return &Handler{
		Catalog:   cat,
		Carts:     carts,
		Ledger:    ledger,
		Users:     users,
		Admins:    admins,
		Super:     super,
		JWTSecret: jwtSecret,
		LogoDir:   logoDir,
	}
}

// Stored filenames are bare; URLs are resolved here rather than baked
// into cart lines, so assets survive a directory move.
func uploadURL(filename string) string {
	if filename == "" {
		return ""
	}
	return "/static/uploads/" + filename
}

func logoURL(filename string) string {
	if filename == "" {
		return ""
	}
	return "/static/logos/" + filename
}

type menuItemView struct {
	models.MenuItem
	ImageURL string `json:"image_url"`
}

func menuViews(items []models.MenuItem) []menuItemView {
	views := make([]menuItemView, 0, len(items))
	for _, item := range items {
		views = append(views, menuItemView{MenuItem: item, ImageURL: uploadURL(item.Image)})
	}
	return views
}

type cartLineView struct {
	models.CartLine
	ImageURL string `json:"image_url"`
}

func cartViews(lines []models.CartLine) []cartLineView {
	views := make([]cartLineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, cartLineView{CartLine: line, ImageURL: uploadURL(line.Image)})
	}
	return views
}
