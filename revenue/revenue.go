// Package revenue attributes placed orders to businesses. Attribution
// uses the owner username persisted on each order line at cart-insertion
// time, so two businesses with identically named items never cross-count.
package revenue

import "quickbite-api/models"

// Summary is the per-business rollup shown on the admin panel.
type Summary struct {
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// PerAdmin sums revenue from every order line owned by the admin. An
// order counts once if any of its lines matched, however many did.
func PerAdmin(owner string, orders []models.Order) Summary {
	var s Summary
	for _, order := range orders {
		matched := false
		for _, line := range order.Items {
			if line.Admin == owner {
				matched = true
				s.Revenue += line.Price * float64(line.Quantity)
			}
		}
		if matched {
			s.Orders++
		}
	}
	return s
}

// BusinessReport pairs an admin account with its platform-wide totals.
type BusinessReport struct {
	models.Admin
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

// Platform rolls up every order line by the restaurant name captured on
// it and joins the totals onto each admin by business name. Lines with
// no restaurant name are skipped.
func Platform(orders []models.Order, admins []models.Admin) []BusinessReport {
	byBusiness := make(map[string]Summary)
	for _, order := range orders {
		for _, line := range order.Items {
			if line.RestaurantName == "" {
				continue
			}
			s := byBusiness[line.RestaurantName]
			s.Orders++
			s.Revenue += line.Price * float64(line.Quantity)
			byBusiness[line.RestaurantName] = s
		}
	}

	reports := make([]BusinessReport, 0, len(admins))
	for _, admin := range admins {
		s := byBusiness[admin.Business]
		reports = append(reports, BusinessReport{
			Admin:        admin,
			TotalOrders:  s.Orders,
			TotalRevenue: s.Revenue,
		})
	}
	return reports
}
