package store

import (
	"fmt"

	"fulfillo/internal/models"
	"fulfillo/internal/util"

	"go.uber.org/zap"
)

// SetOrderStatus replaces the matching order's status. It performs no
// transition validation: any status can be set from any prior status
// (operator override). Repeat calls with the same status are no-ops.
func (s *Store) SetOrderStatus(orderID string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			util.MutationsTotal.WithLabelValues("order", "set_status").Inc()
			s.logger.Info("Order status set",
				zap.String("order_id", orderID),
				zap.String("status", string(status)))
			return nil
		}
	}
	return fmt.Errorf("order %s: %w", orderID, ErrNotFound)
}

// AddOrder prepends a fully-formed order. If the order carries no ID
// one is generated in the #ORD-#### format.
func (s *Store) AddOrder(order models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID == "" {
		order.ID = generateID("#ORD-", s.orderIDExists)
	} else if s.orderIDExists(order.ID) {
		return models.Order{}, fmt.Errorf("order id already exists: %s", order.ID)
	}
	s.orders = append([]models.Order{order}, s.orders...)
	util.MutationsTotal.WithLabelValues("order", "add").Inc()
	s.logger.Info("Order added",
		zap.String("order_id", order.ID),
		zap.String("brand_id", order.BrandID))
	return order, nil
}

func (s *Store) orderIDExists(id string) bool {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return true
		}
	}
	return false
}

// SetStock replaces the matching inventory item's stock with the given
// value as-is. Clamping at zero is the caller's responsibility.
func (s *Store) SetStock(itemID string, stock int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventory {
		if s.inventory[i].ID == itemID {
			s.inventory[i].Stock = stock
			util.MutationsTotal.WithLabelValues("inventory", "set_stock").Inc()
			s.logger.Info("Stock set",
				zap.String("item_id", itemID),
				zap.Int("stock", stock))
			return nil
		}
	}
	return fmt.Errorf("inventory item %s: %w", itemID, ErrNotFound)
}
