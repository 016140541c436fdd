package models

// CartLine is one entry in a session cart, snapshotting the menu item's
// attributes at insertion time. Every line keeps the source item id and
// the owning admin so revenue attribution never has to join by name.
// AdHoc marks "order now" lines, which are appended as-is and never
// merged with existing lines for the same item.
type CartLine struct {
	ItemID         string  `json:"item_id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity"`
	RestaurantName string  `json:"restaurant_name"`
	Image          string  `json:"image"` // bare filename, resolved to a URL at render time
	Admin          string  `json:"admin"`
	AdHoc          bool    `json:"ad_hoc,omitempty"`
	Total          float64 `json:"total"` // price × quantity, set by ComputeTotals
}
