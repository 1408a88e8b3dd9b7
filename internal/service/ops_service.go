package service

import (
	"context"
	"fmt"
	"time"

	"fulfillo/internal/models"
	"fulfillo/internal/store"
	"fulfillo/internal/util"

	"go.uber.org/zap"
)

// OpsService wraps the store's operational mutations with validation,
// tracing and metrics. Role checks do not live here: the API surface
// decides who may call what.
type OpsService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewOpsService creates a new operations service
func NewOpsService(st *store.Store) *OpsService {
	return &OpsService{store: st, logger: util.GetLogger()}
}

// SetOrderStatus force-sets an order's status without consulting the
// transition table (operator override, the dashboard's default path)
func (s *OpsService) SetOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	_, span := util.StartSpan(ctx, "OpsService.SetOrderStatus")
	defer span.End()

	if !status.Valid() {
		util.MutationsRejectedTotal.WithLabelValues("order", "unknown_status").Inc()
		return fmt.Errorf("unknown order status: %s", status)
	}
	return s.store.SetOrderStatus(orderID, status)
}

// AdvanceOrderStatus sets an order's status only when the move follows
// the intended progression
func (s *OpsService) AdvanceOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	_, span := util.StartSpan(ctx, "OpsService.AdvanceOrderStatus")
	defer span.End()

	if !status.Valid() {
		util.MutationsRejectedTotal.WithLabelValues("order", "unknown_status").Inc()
		return fmt.Errorf("unknown order status: %s", status)
	}
	order, err := s.store.GetOrderByID(orderID)
	if err != nil {
		return err
	}
	if !models.CanTransition(order.Status, status) {
		util.MutationsRejectedTotal.WithLabelValues("order", "invalid_transition").Inc()
		return fmt.Errorf("invalid transition %s -> %s for order %s", order.Status, status, orderID)
	}
	return s.store.SetOrderStatus(orderID, status)
}

// CreateOrderRequest carries the manual order form fields
type CreateOrderRequest struct {
	BrandID  string `json:"brand_id" binding:"required"`
	Customer string `json:"customer" binding:"required"`
	Total    int64  `json:"total" binding:"required,min=1"`
	Carrier  string `json:"carrier"`
}

// CreateOrder records a manually entered order: generated id, status
// NEW, source Manual, dated today
func (s *OpsService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	_, span := util.StartSpan(ctx, "OpsService.CreateOrder")
	defer span.End()

	if _, err := s.store.GetBrandByID(req.BrandID); err != nil {
		return nil, err
	}

	order, err := s.store.AddOrder(models.Order{
		BrandID:  req.BrandID,
		Customer: req.Customer,
		Status:   models.OrderStatusNew,
		Total:    req.Total,
		Created:  time.Now().Format("2006-01-02"),
		Source:   "Manual",
		Carrier:  req.Carrier,
	})
	if err != nil {
		return nil, err
	}
	util.OrdersCreatedTotal.Inc()
	return &order, nil
}

// ChangeStock applies a delta to an item's stock, clamping the result
// at zero. The store itself sets stock as-is; the floor lives here at
// the call site.
func (s *OpsService) ChangeStock(ctx context.Context, itemID string, delta int) (int, error) {
	_, span := util.StartSpan(ctx, "OpsService.ChangeStock")
	defer span.End()

	item, err := s.store.GetInventoryItemByID(itemID)
	if err != nil {
		return 0, err
	}
	stock := item.Stock + delta
	if stock < 0 {
		stock = 0
	}
	if err := s.store.SetStock(itemID, stock); err != nil {
		return 0, err
	}
	return stock, nil
}

// SetStock replaces an item's stock with an absolute value, clamped at
// zero
func (s *OpsService) SetStock(ctx context.Context, itemID string, stock int) (int, error) {
	_, span := util.StartSpan(ctx, "OpsService.SetStock")
	defer span.End()

	if stock < 0 {
		stock = 0
	}
	if err := s.store.SetStock(itemID, stock); err != nil {
		return 0, err
	}
	return stock, nil
}

// Reconcile accumulates a settled payout into a brand's balance
func (s *OpsService) Reconcile(ctx context.Context, brandID string, amount int64) error {
	_, span := util.StartSpan(ctx, "OpsService.Reconcile")
	defer span.End()

	if amount <= 0 {
		util.MutationsRejectedTotal.WithLabelValues("brand", "non_positive_amount").Inc()
		return fmt.Errorf("reconcile amount must be positive, got %d", amount)
	}
	if err := s.store.ReconcileBrandBalance(brandID, amount); err != nil {
		return err
	}
	s.logger.Info("Reconciliation recorded",
		zap.String("brand_id", brandID),
		zap.Int64("amount", amount))
	return nil
}

// SetBrandIntegration toggles a brand's technical integration flag
func (s *OpsService) SetBrandIntegration(ctx context.Context, brandID string, integrated bool) error {
	_, span := util.StartSpan(ctx, "OpsService.SetBrandIntegration")
	defer span.End()
	return s.store.SetBrandIntegration(brandID, integrated)
}
