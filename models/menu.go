package models

// MenuItem is one catalog entry owned by a business admin.
// Admin is set at creation and never changes; it is the sole ownership
// check for edit and delete.
type MenuItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Image          string  `json:"image"` // filename in the upload directory
	Category       string  `json:"category"`
	RestaurantName string  `json:"restaurant_name"`
	Admin          string  `json:"admin"`
}
