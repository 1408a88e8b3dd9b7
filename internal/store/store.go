package store

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"fulfillo/internal/models"
	"fulfillo/internal/util"

	"go.uber.org/zap"
)

// ErrNotFound is returned by mutations whose key matches no record
var ErrNotFound = errors.New("not found")

// Store owns every entity collection. All reads hand out copies and all
// writes go through the fixed mutation entry points below, so a mutation
// is always a single-collection replace-by-key under one lock.
// Collections keep insertion order, which is also display order.
//
// State lives only in memory and resets with the process.
type Store struct {
	mu        sync.RWMutex
	users     []models.UserAccount
	brands    []models.Brand
	orders    []models.Order
	inventory []models.InventoryItem
	customers []models.Customer
	inquiries []models.PartnerInquiry
	logger    *zap.Logger
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{logger: util.GetLogger()}
}

// Users returns a copy of the user registry
func (s *Store) Users() []models.UserAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.UserAccount, len(s.users))
	copy(out, s.users)
	return out
}

// Brands returns a copy of the brand collection
func (s *Store) Brands() []models.Brand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Brand, len(s.brands))
	copy(out, s.brands)
	return out
}

// Orders returns a copy of the order collection
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Inventory returns a copy of the inventory collection
func (s *Store) Inventory() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.InventoryItem, len(s.inventory))
	copy(out, s.inventory)
	return out
}

// Customers returns a copy of the customer collection
func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Inquiries returns a copy of the inquiry collection
func (s *Store) Inquiries() []models.PartnerInquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PartnerInquiry, len(s.inquiries))
	copy(out, s.inquiries)
	return out
}

// GetUserByEmail retrieves a user account by its unique email
func (s *Store) GetUserByEmail(email string) (*models.UserAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
}

// GetBrandByID retrieves a brand by ID
func (s *Store) GetBrandByID(id string) (*models.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.brands {
		if s.brands[i].ID == id {
			b := s.brands[i]
			return &b, nil
		}
	}
	return nil, fmt.Errorf("brand %s: %w", id, ErrNotFound)
}

// GetOrderByID retrieves an order by ID
func (s *Store) GetOrderByID(id string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
}

// GetInventoryItemByID retrieves an inventory item by ID
func (s *Store) GetInventoryItemByID(id string) (*models.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			item := s.inventory[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("inventory item %s: %w", id, ErrNotFound)
}

// GetInquiryByID retrieves a partner inquiry by ID
func (s *Store) GetInquiryByID(id string) (*models.PartnerInquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.inquiries {
		if s.inquiries[i].ID == id {
			inq := s.inquiries[i]
			return &inq, nil
		}
	}
	return nil, fmt.Errorf("inquiry %s: %w", id, ErrNotFound)
}

// BrandName resolves a brand ID to its display name; missing brands
// resolve to the raw ID so orphaned references stay visible
func (s *Store) BrandName(brandID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.brands {
		if s.brands[i].ID == brandID {
			return s.brands[i].Name
		}
	}
	return brandID
}

// generateID produces a prefixed four-digit id, retrying on collision
// with the given existence check. Caller must hold the write lock.
func generateID(prefix string, exists func(string) bool) string {
	for {
		id := fmt.Sprintf("%s%d", prefix, 1000+rand.Intn(9000))
		if !exists(id) {
			return id
		}
	}
}
