package identity

import (
	"quickbite-api/models"
	"quickbite-api/store"
)

// Users is the consumer account store.
type Users struct {
	col *store.Collection[models.User]
}

func NewUsers(col *store.Collection[models.User]) *Users {
	return &Users{col: col}
}

// Register creates a new user, rejecting a taken username.
func (u *Users) Register(username, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	return u.col.Update(func(users []models.User) ([]models.User, error) {
		for _, existing := range users {
			if existing.Username == username {
				return nil, ErrDuplicateUsername
			}
		}
		return append(users, models.User{Username: username, Password: hash}), nil
	})
}

// Authenticate verifies the credential pair against the store.
func (u *Users) Authenticate(username, password string) (models.User, error) {
	users, err := u.col.Load()
	if err != nil {
		return models.User{}, err
	}
	for _, user := range users {
		if user.Username == username && CheckPassword(user.Password, password) {
			return user, nil
		}
	}
	return models.User{}, ErrBadCredentials
}

// Delete removes the user if present; deleting an unknown username is
// a no-op.
func (u *Users) Delete(username string) error {
	return u.col.Update(func(users []models.User) ([]models.User, error) {
		kept := users[:0]
		for _, user := range users {
			if user.Username != username {
				kept = append(kept, user)
			}
		}
		return kept, nil
	})
}

// List returns every registered user.
func (u *Users) List() ([]models.User, error) {
	return u.col.Load()
}
