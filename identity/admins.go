package identity

import (
	"quickbite-api/models"
	"quickbite-api/store"
)

// Admins is the business account store.
type Admins struct {
	col *store.Collection[models.Admin]
}

func NewAdmins(col *store.Collection[models.Admin]) *Admins {
	return &Admins{col: col}
}

// Register creates a business admin with a pre-generated logo filename.
func (a *Admins) Register(username, password, business, category, logo string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	return a.col.Update(func(admins []models.Admin) ([]models.Admin, error) {
		for _, existing := range admins {
			if existing.Username == username {
				return nil, ErrDuplicateUsername
			}
		}
		return append(admins, models.Admin{
			Username: username,
			Password: hash,
			Business: business,
			Category: category,
			Logo:     logo,
		}), nil
	})
}

// Authenticate verifies the credential pair against the store.
func (a *Admins) Authenticate(username, password string) (models.Admin, error) {
	admins, err := a.col.Load()
	if err != nil {
		return models.Admin{}, err
	}
	for _, admin := range admins {
		if admin.Username == username && CheckPassword(admin.Password, password) {
			return admin, nil
		}
	}
	return models.Admin{}, ErrBadCredentials
}

// Get returns the admin record for a username.
func (a *Admins) Get(username string) (models.Admin, error) {
	admins, err := a.col.Load()
	if err != nil {
		return models.Admin{}, err
	}
	for _, admin := range admins {
		if admin.Username == username {
			return admin, nil
		}
	}
	return models.Admin{}, ErrNotFound
}

// Delete removes the admin if present; unknown usernames are a no-op.
func (a *Admins) Delete(username string) error {
	return a.col.Update(func(admins []models.Admin) ([]models.Admin, error) {
		kept := admins[:0]
		for _, admin := range admins {
			if admin.Username != username {
				kept = append(kept, admin)
			}
		}
		return kept, nil
	})
}

// List returns every business admin.
func (a *Admins) List() ([]models.Admin, error) {
	return a.col.Load()
}
