package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quickbite-api/models"
	"quickbite-api/store"
)

func newManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	uploadDir := filepath.Join(dir, "uploads")
	col := store.NewCollection[models.MenuItem](filepath.Join(dir, "menu.json"))
	return NewManager(col, uploadDir), uploadDir
}

func addBurger(t *testing.T, m *Manager, owner string) models.MenuItem {
	t.Helper()
	item, err := m.Add(AddParams{
		Name:      "Burger",
		Price:     5,
		Category:  "Fast Food",
		Owner:     owner,
		Business:  "Biz One",
		Image:     strings.NewReader("fake png bytes"),
		ImageName: "burger.png",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	return item
}

func TestAddStoresItemAndImage(t *testing.T) {
	m, uploadDir := newManager(t)
	item := addBurger(t, m, "biz1")

	if item.ID == "" {
		t.Error("item got no id")
	}
	if item.Admin != "biz1" || item.RestaurantName != "Biz One" {
		t.Errorf("ownership fields wrong: %+v", item)
	}
	if _, err := os.Stat(filepath.Join(uploadDir, item.Image)); err != nil {
		t.Errorf("image file not stored: %v", err)
	}
}

func TestAddRejectsBadUploads(t *testing.T) {
	m, _ := newManager(t)
	tests := []struct {
		name     string
		filename string
	}{
		{"no filename", ""},
		{"executable", "evil.exe"},
		{"no extension", "burger"},
		{"double extension trick", "burger.png.sh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Add(AddParams{
				Name:      "Burger",
				Price:     5,
				Owner:     "biz1",
				Image:     strings.NewReader("x"),
				ImageName: tt.filename,
			})
			if !errors.Is(err, ErrInvalidFile) {
				t.Errorf("Add(%q) err = %v, want ErrInvalidFile", tt.filename, err)
			}
		})
	}
}

func TestEditRequiresOwnership(t *testing.T) {
	m, _ := newManager(t)
	item := addBurger(t, m, "biz1")

	_, err := m.Edit(item.ID, "biz2", EditParams{Name: "Stolen", Price: 1})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Edit by non-owner err = %v, want ErrNotFound", err)
	}

	// record must be untouched
	got, err := m.Get(item.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Burger" || got.Price != 5 {
		t.Errorf("non-owner edit mutated item: %+v", got)
	}
}

func TestEditUpdatesFields(t *testing.T) {
	m, _ := newManager(t)
	item := addBurger(t, m, "biz1")

	updated, err := m.Edit(item.ID, "biz1", EditParams{
		Name:     "Double Burger",
		Price:    7.5,
		Category: "Specials",
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if updated.Name != "Double Burger" || updated.Price != 7.5 || updated.Category != "Specials" {
		t.Errorf("edit result = %+v", updated)
	}
	if updated.Image != item.Image {
		t.Error("image changed without a new upload")
	}
	if updated.Admin != "biz1" {
		t.Error("admin field must be immutable")
	}
}

func TestEditReplacesImage(t *testing.T) {
	m, uploadDir := newManager(t)
	item := addBurger(t, m, "biz1")

	updated, err := m.Edit(item.ID, "biz1", EditParams{
		Name:      "Burger",
		Price:     5,
		Image:     strings.NewReader("new bytes"),
		ImageName: "new.jpg",
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if updated.Image == item.Image {
		t.Fatal("new image must get a fresh filename")
	}
	if _, err := os.Stat(filepath.Join(uploadDir, updated.Image)); err != nil {
		t.Errorf("new image missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(uploadDir, item.Image)); !os.IsNotExist(err) {
		t.Error("old image should be deleted")
	}
}

func TestDeleteRequiresOwnership(t *testing.T) {
	m, uploadDir := newManager(t)
	item := addBurger(t, m, "biz1")

	if err := m.Delete(item.ID, "biz2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete by non-owner err = %v, want ErrNotFound", err)
	}
	if _, err := m.Get(item.ID); err != nil {
		t.Error("item should survive non-owner delete")
	}

	if err := m.Delete(item.ID, "biz1"); err != nil {
		t.Fatalf("Delete by owner: %v", err)
	}
	if _, err := m.Get(item.ID); !errors.Is(err, ErrNotFound) {
		t.Error("item should be gone after owner delete")
	}
	if _, err := os.Stat(filepath.Join(uploadDir, item.Image)); !os.IsNotExist(err) {
		t.Error("image should be deleted with the item")
	}
}

func TestListForAdmin(t *testing.T) {
	m, _ := newManager(t)
	addBurger(t, m, "biz1")
	m.Add(AddParams{Name: "Veggie Pizza", Price: 8, Category: "Italian",
		Owner: "biz1", Image: strings.NewReader("x"), ImageName: "p.png"})
	m.Add(AddParams{Name: "Sushi", Price: 12, Category: "Japanese",
		Owner: "biz2", Image: strings.NewReader("x"), ImageName: "s.png"})

	tests := []struct {
		owner string
		query string
		want  int
	}{
		{"biz1", "", 2},
		{"biz2", "", 1},
		{"biz3", "", 0},
		{"biz1", "burger", 1},    // name match, case-insensitive
		{"biz1", "ITALIAN", 1},   // category match
		{"biz1", "zz", 1},        // substring match anywhere in the name ("Veggie Pizza")
		{"biz1", "qq", 0},
		{"biz1", "  pizza  ", 1}, // query is trimmed
	}
	for _, tt := range tests {
		items, err := m.ListForAdmin(tt.owner, tt.query)
		if err != nil {
			t.Fatalf("ListForAdmin(%q, %q): %v", tt.owner, tt.query, err)
		}
		if len(items) != tt.want {
			t.Errorf("ListForAdmin(%q, %q) = %d items, want %d", tt.owner, tt.query, len(items), tt.want)
		}
	}
}

func TestSuperDeleteIgnoresOwnership(t *testing.T) {
	m, _ := newManager(t)
	item := addBurger(t, m, "biz1")

	if err := m.SuperDelete(item.ID); err != nil {
		t.Fatalf("SuperDelete: %v", err)
	}
	if _, err := m.Get(item.ID); !errors.Is(err, ErrNotFound) {
		t.Error("item should be gone")
	}
}

func TestSuperDeleteToleratesRecordsWithoutID(t *testing.T) {
	dir := t.TempDir()
	col := store.NewCollection[models.MenuItem](filepath.Join(dir, "menu.json"))
	col.Save([]models.MenuItem{
		{Name: "Legacy item with no id", Admin: "biz1"},
		{ID: "keep", Name: "Kept", Admin: "biz1"},
	})
	m := NewManager(col, filepath.Join(dir, "uploads"))

	if err := m.SuperDelete("missing"); err != nil {
		t.Fatalf("SuperDelete: %v", err)
	}
	items, _ := m.All()
	if len(items) != 2 {
		t.Errorf("no-match delete removed records: %d left, want 2", len(items))
	}
}
