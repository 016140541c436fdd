package cart

import (
	"testing"

	"quickbite-api/models"
)

func burger() models.MenuItem {
	return models.MenuItem{
		ID:             "1",
		Name:           "Burger",
		Price:          5,
		Image:          "burger.png",
		Category:       "Fast Food",
		RestaurantName: "Biz One",
		Admin:          "biz1",
	}
}

func pizza() models.MenuItem {
	return models.MenuItem{
		ID:             "2",
		Name:           "Pizza",
		Price:          8,
		RestaurantName: "Biz Two",
		Admin:          "biz2",
	}
}

func TestAddMergesByItemID(t *testing.T) {
	r := NewRegistry()

	if count := r.Add("s1", burger(), 2); count != 2 {
		t.Errorf("first add: count = %d, want 2", count)
	}
	if count := r.Add("s1", burger(), 3); count != 5 {
		t.Errorf("second add: count = %d, want 5", count)
	}

	lines := r.Lines("s1")
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1 merged line", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", lines[0].Quantity)
	}

	_, grand := ComputeTotals(lines)
	if grand != 25 {
		t.Errorf("grand total = %v, want 25", grand)
	}
}

func TestAddDifferentItemsAppends(t *testing.T) {
	r := NewRegistry()
	r.Add("s1", burger(), 1)
	r.Add("s1", pizza(), 1)

	if lines := r.Lines("s1"); len(lines) != 2 {
		t.Errorf("len(lines) = %d, want 2", len(lines))
	}
}

func TestOrderNowNeverMerges(t *testing.T) {
	r := NewRegistry()
	r.Add("s1", burger(), 1)
	r.OrderNow("s1", burger(), "Pop-up Kitchen", 2)
	r.Add("s1", burger(), 1)

	lines := r.Lines("s1")
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2 (regular merged, ad-hoc separate)", len(lines))
	}
	if lines[0].Quantity != 2 || lines[0].AdHoc {
		t.Errorf("regular line = %+v, want quantity 2 and not ad-hoc", lines[0])
	}
	if !lines[1].AdHoc {
		t.Error("order-now line should be ad-hoc")
	}
	if lines[1].RestaurantName != "Pop-up Kitchen" {
		t.Errorf("ad-hoc restaurant = %q, want the supplied name", lines[1].RestaurantName)
	}
	if lines[1].ItemID != "1" || lines[1].Admin != "biz1" {
		t.Errorf("ad-hoc line must keep item id and owner, got %+v", lines[1])
	}
}

func TestRemoveAtBounds(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  int // lines remaining
	}{
		{"negative", -1, 2},
		{"past end", 2, 2},
		{"way past end", 100, 2},
		{"first", 0, 1},
		{"last", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			r.Add("s1", burger(), 1)
			r.Add("s1", pizza(), 1)
			r.RemoveAt("s1", tt.index)
			if got := len(r.Lines("s1")); got != tt.want {
				t.Errorf("RemoveAt(%d): %d lines remain, want %d", tt.index, got, tt.want)
			}
		})
	}
}

func TestClear(t *testing.T) {
	r := NewRegistry()
	r.Add("s1", burger(), 3)
	r.Clear("s1")
	if len(r.Lines("s1")) != 0 {
		t.Error("cart not empty after Clear")
	}
	if r.Count("s1") != 0 {
		t.Error("count not zero after Clear")
	}
}

func TestComputeTotalsIdempotent(t *testing.T) {
	lines := []models.CartLine{
		{ItemID: "1", Price: 5, Quantity: 5},
		{ItemID: "2", Price: 2.5, Quantity: 2},
	}

	once, total1 := ComputeTotals(lines)
	twice, total2 := ComputeTotals(once)

	if total1 != total2 {
		t.Errorf("totals differ across calls: %v vs %v", total1, total2)
	}
	if total1 != 30 {
		t.Errorf("grand total = %v, want 30", total1)
	}
	if twice[0].Total != 25 || twice[1].Total != 5 {
		t.Errorf("line totals = %v, %v; want 25, 5", twice[0].Total, twice[1].Total)
	}
	// input must not be mutated
	if lines[0].Total != 0 {
		t.Error("ComputeTotals mutated its input")
	}
}

func TestCartsAreSessionScoped(t *testing.T) {
	r := NewRegistry()
	r.Add("s1", burger(), 1)
	r.Add("s2", pizza(), 4)

	if r.Count("s1") != 1 {
		t.Errorf("s1 count = %d, want 1", r.Count("s1"))
	}
	if r.Count("s2") != 4 {
		t.Errorf("s2 count = %d, want 4", r.Count("s2"))
	}
}
