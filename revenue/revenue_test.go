package revenue

import (
	"testing"

	"quickbite-api/models"
)

func TestPerAdminCountsOrderOnce(t *testing.T) {
	orders := []models.Order{
		{
			// two biz1 lines in one order: revenue from both, order counted once
			Items: []models.CartLine{
				{Name: "Burger", Price: 5, Quantity: 5, Admin: "biz1"},
				{Name: "Fries", Price: 2, Quantity: 1, Admin: "biz1"},
				{Name: "Sushi", Price: 12, Quantity: 1, Admin: "biz2"},
			},
		},
		{
			Items: []models.CartLine{
				{Name: "Sushi", Price: 12, Quantity: 2, Admin: "biz2"},
			},
		},
	}

	tests := []struct {
		owner       string
		wantOrders  int
		wantRevenue float64
	}{
		{"biz1", 1, 27},
		{"biz2", 2, 36},
		{"biz3", 0, 0},
	}
	for _, tt := range tests {
		got := PerAdmin(tt.owner, orders)
		if got.Orders != tt.wantOrders || got.Revenue != tt.wantRevenue {
			t.Errorf("PerAdmin(%q) = %+v, want {Orders:%d Revenue:%v}",
				tt.owner, got, tt.wantOrders, tt.wantRevenue)
		}
	}
}

func TestPerAdminAttributesByOwnerNotName(t *testing.T) {
	// two businesses sell an identically named item; attribution must
	// follow the owner stamped on the line, not the name
	orders := []models.Order{
		{Items: []models.CartLine{{Name: "Burger", Price: 5, Quantity: 1, Admin: "biz1"}}},
		{Items: []models.CartLine{{Name: "Burger", Price: 9, Quantity: 1, Admin: "biz2"}}},
	}

	if got := PerAdmin("biz1", orders); got.Orders != 1 || got.Revenue != 5 {
		t.Errorf("biz1 = %+v, want exactly its own burger", got)
	}
	if got := PerAdmin("biz2", orders); got.Orders != 1 || got.Revenue != 9 {
		t.Errorf("biz2 = %+v, want exactly its own burger", got)
	}
}

func TestPlatformJoinsOntoAdmins(t *testing.T) {
	orders := []models.Order{
		{Items: []models.CartLine{
			{Price: 5, Quantity: 2, RestaurantName: "Biz One"},
			{Price: 3, Quantity: 1, RestaurantName: "Biz Two"},
		}},
		{Items: []models.CartLine{
			{Price: 5, Quantity: 1, RestaurantName: "Biz One"},
			{Price: 4, Quantity: 1, RestaurantName: ""}, // nameless lines are skipped
		}},
	}
	admins := []models.Admin{
		{Username: "biz1", Business: "Biz One"},
		{Username: "biz2", Business: "Biz Two"},
		{Username: "biz3", Business: "Biz Three"},
	}

	reports := Platform(orders, admins)
	if len(reports) != 3 {
		t.Fatalf("len(reports) = %d, want one per admin", len(reports))
	}

	byUser := map[string]BusinessReport{}
	for _, r := range reports {
		byUser[r.Username] = r
	}
	if r := byUser["biz1"]; r.TotalOrders != 2 || r.TotalRevenue != 15 {
		t.Errorf("biz1 = {Orders:%d Revenue:%v}, want {2 15}", r.TotalOrders, r.TotalRevenue)
	}
	if r := byUser["biz2"]; r.TotalOrders != 1 || r.TotalRevenue != 3 {
		t.Errorf("biz2 = {Orders:%d Revenue:%v}, want {1 3}", r.TotalOrders, r.TotalRevenue)
	}
	if r := byUser["biz3"]; r.TotalOrders != 0 || r.TotalRevenue != 0 {
		t.Errorf("biz3 = {Orders:%d Revenue:%v}, want zeroes", r.TotalOrders, r.TotalRevenue)
	}
}
