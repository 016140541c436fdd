// Package catalog manages menu items and their image assets. An item's
// image lives in the upload directory for exactly as long as the item
// does; swapping an image always generates a fresh filename so old and
// new can never collide.
package catalog

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"quickbite-api/assets"
	"quickbite-api/models"
	"quickbite-api/store"
)

var (
	// ErrNotFound covers both a missing item and an ownership mismatch:
	// lookups are always scoped to the requesting admin.
	ErrNotFound = errors.New("menu item not found")

	// ErrInvalidFile rejects uploads with no filename or a disallowed
	// extension.
	ErrInvalidFile = errors.New("invalid image file")
)

// Manager owns the menu collection and the upload directory.
type Manager struct {
	items     *store.Collection[models.MenuItem]
	uploadDir string
}

func NewManager(items *store.Collection[models.MenuItem], uploadDir string) *Manager {
	return &Manager{items: items, uploadDir: uploadDir}
}

// AddParams carries everything needed to create a menu item. Owner and
// Business come from the authenticated admin, never the request body.
type AddParams struct {
	Name      string
	Price     float64
	Category  string
	Owner     string
	Business  string
	Image     io.Reader
	ImageName string
}

// Add validates the upload, stores the image, and appends a new item
// with a fresh id owned by params.Owner.
func (m *Manager) Add(params AddParams) (models.MenuItem, error) {
	if params.ImageName == "" || !assets.AllowedImage(params.ImageName) {
		return models.MenuItem{}, ErrInvalidFile
	}

	filename, err := assets.SaveUpload(m.uploadDir, params.Image, assets.SanitizeFilename(params.ImageName))
	if err != nil {
		return models.MenuItem{}, err
	}

	item := models.MenuItem{
		ID:             uuid.NewString(),
		Name:           params.Name,
		Price:          params.Price,
		Image:          filename,
		Category:       params.Category,
		RestaurantName: params.Business,
		Admin:          params.Owner,
	}
	err = m.items.Update(func(items []models.MenuItem) ([]models.MenuItem, error) {
		return append(items, item), nil
	})
	if err != nil {
		assets.Remove(m.uploadDir, filename)
		return models.MenuItem{}, err
	}
	return item, nil
}

// EditParams are the mutable item fields. A nil Image leaves the current
// image in place.
type EditParams struct {
	Name      string
	Price     float64
	Category  string
	Image     io.Reader
	ImageName string
}

// Edit updates name, price and category of the owner's item, replacing
// the image if a new one is supplied. The replacement gets a uuid-hex
// filename and the old file is removed best-effort.
func (m *Manager) Edit(id, owner string, params EditParams) (models.MenuItem, error) {
	newImage := ""
	if params.Image != nil {
		if params.ImageName == "" || !assets.AllowedImage(params.ImageName) {
			return models.MenuItem{}, ErrInvalidFile
		}
		name, err := assets.SaveUpload(m.uploadDir, params.Image, assets.UniqueName(filepath.Ext(params.ImageName)))
		if err != nil {
			return models.MenuItem{}, err
		}
		newImage = name
	}

	var updated models.MenuItem
	var oldImage string
	err := m.items.Update(func(items []models.MenuItem) ([]models.MenuItem, error) {
		for i := range items {
			if items[i].ID == id && items[i].Admin == owner {
				items[i].Name = params.Name
				items[i].Price = params.Price
				items[i].Category = params.Category
				if newImage != "" {
					oldImage = items[i].Image
					items[i].Image = newImage
				}
				updated = items[i]
				return items, nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		assets.Remove(m.uploadDir, newImage)
		return models.MenuItem{}, err
	}
	if oldImage != "" {
		assets.Remove(m.uploadDir, oldImage)
	}
	return updated, nil
}

// Delete removes the owner's item and its image file.
func (m *Manager) Delete(id, owner string) error {
	var image string
	err := m.items.Update(func(items []models.MenuItem) ([]models.MenuItem, error) {
		for i := range items {
			if items[i].ID == id && items[i].Admin == owner {
				image = items[i].Image
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return err
	}
	assets.Remove(m.uploadDir, image)
	return nil
}

// SuperDelete removes an item by id regardless of owner. Records without
// an id never match and are left untouched rather than erroring.
func (m *Manager) SuperDelete(id string) error {
	var image string
	err := m.items.Update(func(items []models.MenuItem) ([]models.MenuItem, error) {
		kept := items[:0]
		for _, item := range items {
			if item.ID != "" && item.ID == id {
				image = item.Image
				continue
			}
			kept = append(kept, item)
		}
		return kept, nil
	})
	if err != nil {
		return err
	}
	assets.Remove(m.uploadDir, image)
	return nil
}

// ListForAdmin returns the owner's items, optionally filtered by a
// case-insensitive substring match on name or category.
func (m *Manager) ListForAdmin(owner, query string) ([]models.MenuItem, error) {
	items, err := m.items.Load()
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	var out []models.MenuItem
	for _, item := range items {
		if item.Admin != owner {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Category), query) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// All returns the full catalog across every business.
func (m *Manager) All() ([]models.MenuItem, error) {
	return m.items.Load()
}

// Get looks up a single item by id.
func (m *Manager) Get(id string) (models.MenuItem, error) {
	items, err := m.items.Load()
	if err != nil {
		return models.MenuItem{}, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.MenuItem{}, ErrNotFound
}
