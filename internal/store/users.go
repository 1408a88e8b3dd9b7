package store

import (
	"fmt"

	"fulfillo/internal/models"
	"fulfillo/internal/util"

	"go.uber.org/zap"
)

// RegisterUser appends a new account to the registry with Active forced
// true. Email must be unique.
func (s *Store) RegisterUser(user models.UserAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == user.Email {
			return fmt.Errorf("user email already registered: %s", user.Email)
		}
	}
	user.Active = true
	s.users = append(s.users, user)
	util.MutationsTotal.WithLabelValues("user", "register").Inc()
	s.logger.Info("User registered",
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))
	return nil
}

// UserPatch holds the editable fields of an account; nil means unchanged
type UserPatch struct {
	Name       *string
	Password   *string
	Department *string
}

// UpdateUser merges the patch into the matching account
func (s *Store) UpdateUser(email string, patch UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == email {
			if patch.Name != nil {
				s.users[i].Name = *patch.Name
			}
			if patch.Password != nil {
				s.users[i].Password = *patch.Password
			}
			if patch.Department != nil {
				s.users[i].Department = *patch.Department
			}
			util.MutationsTotal.WithLabelValues("user", "update").Inc()
			s.logger.Info("User updated", zap.String("email", email))
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", email, ErrNotFound)
}

// ToggleUserActive flips the matching account's active flag. It does not
// special-case the caller's own account; keeping an operator from
// suspending themselves is a concern of the surface above.
func (s *Store) ToggleUserActive(email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == email {
			s.users[i].Active = !s.users[i].Active
			util.MutationsTotal.WithLabelValues("user", "toggle_active").Inc()
			s.logger.Info("User active flag toggled",
				zap.String("email", email),
				zap.Bool("active", s.users[i].Active))
			return s.users[i].Active, nil
		}
	}
	return false, fmt.Errorf("user %s: %w", email, ErrNotFound)
}
