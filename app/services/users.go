package services

import (
	"fmt"
	"sort"
	"time"

	"campus-events/app/models"
	"campus-events/app/store"

	"github.com/google/uuid"
)

// UserService manages accounts. Passwords arrive here already hashed; the auth
// layer owns the hashing and credential checks.
type UserService struct {
	store *store.Store
}

func NewUserService(st *store.Store) *UserService {
	return &UserService{store: st}
}

// Create registers a new account. Email must be unique and the role is fixed
// for the lifetime of the account.
func (s *UserService) Create(username, email, passwordHash string, role models.Role, department string) (*models.User, error) {
	user := &models.User{
		ID:         uuid.New().String(),
		Username:   username,
		Email:      email,
		Password:   passwordHash,
		Role:       role,
		Department: department,
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
	if err := validate.Struct(user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	var created models.User
	err := s.store.Update(func(d *store.Data) error {
		if d.UserByEmail(email) != nil {
			return fmt.Errorf("%w: email already registered", ErrDuplicate)
		}
		d.Users[user.ID] = user
		created = *user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ByEmail returns the user with the given email.
func (s *UserService) ByEmail(email string) (*models.User, error) {
	var user *models.User
	err := s.store.View(func(d *store.Data) error {
		u := d.UserByEmail(email)
		if u == nil {
			return fmt.Errorf("%w: user", ErrNotFound)
		}
		clone := *u
		user = &clone
		return nil
	})
	return user, err
}

// ByID returns the user with the given id.
func (s *UserService) ByID(userID string) (*models.User, error) {
	var user *models.User
	err := s.store.View(func(d *store.Data) error {
		u, ok := d.Users[userID]
		if !ok {
			return fmt.Errorf("%w: user", ErrNotFound)
		}
		clone := *u
		user = &clone
		return nil
	})
	return user, err
}

// UpdatePassword replaces the stored password hash.
func (s *UserService) UpdatePassword(userID, passwordHash string) error {
	return s.store.Update(func(d *store.Data) error {
		u, ok := d.Users[userID]
		if !ok {
			return fmt.Errorf("%w: user", ErrNotFound)
		}
		u.Password = passwordHash
		return nil
	})
}

// ToggleActive flips a non-admin account between active and deactivated.
// Returns the new state.
func (s *UserService) ToggleActive(userID string) (bool, error) {
	var active bool
	err := s.store.Update(func(d *store.Data) error {
		u, ok := d.Users[userID]
		if !ok || u.Role == models.RoleAdmin {
			return fmt.Errorf("%w: user", ErrNotFound)
		}
		u.IsActive = !u.IsActive
		active = u.IsActive
		return nil
	})
	return active, err
}

// List returns every non-admin account, newest first.
func (s *UserService) List() ([]models.User, error) {
	var out []models.User
	err := s.store.View(func(d *store.Data) error {
		for _, u := range d.Users {
			if u.Role != models.RoleAdmin {
				out = append(out, *u)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
