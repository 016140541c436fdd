package models

// Role defines the three independent identity sets in the system
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// User is a consumer account. Created by self-registration, deleted only
// by the super admin.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"` // bcrypt hash, never the plaintext
}

// Admin is a business account owning a slice of the catalog.
type Admin struct {
	Username string `json:"username"`
	Password string `json:"password"` // bcrypt hash
	Business string `json:"business"`
	Category string `json:"category"`
	Logo     string `json:"logo"` // filename in the logo directory
}
