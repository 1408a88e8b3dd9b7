package service

import (
	"context"
	"strings"

	"fulfillo/internal/models"
	"fulfillo/internal/store"
	"fulfillo/internal/util"

	"go.uber.org/zap"
)

// Page keys
const (
	PageDashboard = "dashboard"
	PageBrands    = "brands"
	PageOrders    = "orders"
	PageInventory = "inventory"
	PageCustomers = "customers"
	PageShipping  = "shipping"
	PageReports   = "reports"
	PageSettings  = "settings"
)

// Shipping sub-views
const (
	ShippingViewOutbound = "outbound"
	ShippingViewReturns  = "returns"
)

// pageRoles lists which roles may open each page
var pageRoles = map[string][]models.Role{
	PageDashboard: {models.RoleAdmin, models.RoleOperations, models.RoleBrandOwner},
	PageBrands:    {models.RoleAdmin, models.RoleOperations},
	PageOrders:    {models.RoleAdmin, models.RoleOperations, models.RolePackaging, models.RoleSupport, models.RoleBrandOwner},
	PageInventory: {models.RoleAdmin, models.RoleOperations, models.RolePackaging, models.RoleBrandOwner},
	PageCustomers: {models.RoleAdmin, models.RoleSupport, models.RoleBrandOwner},
	PageShipping:  {models.RoleAdmin, models.RoleOperations, models.RoleBrandOwner},
	PageReports:   {models.RoleAdmin, models.RoleBrandOwner},
	PageSettings:  {models.RoleAdmin},
}

// PagesFor returns the navigation entries visible to a role, in the
// fixed sidebar order
func PagesFor(role models.Role) []string {
	ordered := []string{PageDashboard, PageBrands, PageOrders, PageInventory, PageCustomers, PageShipping, PageReports, PageSettings}
	var out []string
	for _, key := range ordered {
		if PageAllowed(role, key) {
			out = append(out, key)
		}
	}
	return out
}

// PageAllowed reports whether a role may open a page
func PageAllowed(role models.Role, key string) bool {
	for _, r := range pageRoles[key] {
		if r == role {
			return true
		}
	}
	return false
}

// ResolvePage maps a requested page key to the one that will actually
// render: unknown or unauthorized keys fall back to the dashboard
func ResolvePage(role models.Role, key string) string {
	if PageAllowed(role, key) {
		return key
	}
	return PageDashboard
}

// Capabilities are the mutation affordances granted to a role. A brand
// owner is read-only everywhere it can view shared data.
type Capabilities struct {
	MutateOrders     bool `json:"mutate_orders"`
	MutateInventory  bool `json:"mutate_inventory"`
	ManageBrands     bool `json:"manage_brands"`
	DeleteBrands     bool `json:"delete_brands"`
	Reconcile        bool `json:"reconcile"`
	ManageUsers      bool `json:"manage_users"`
	ReviewInquiries  bool `json:"review_inquiries"`
	ToggleIntegration bool `json:"toggle_integration"`
}

// CapabilitiesFor derives the affordance set of a role
func CapabilitiesFor(role models.Role) Capabilities {
	switch role {
	case models.RoleAdmin:
		return Capabilities{
			MutateOrders: true, MutateInventory: true,
			ManageBrands: true, DeleteBrands: true,
			Reconcile: true, ManageUsers: true,
			ReviewInquiries: true, ToggleIntegration: true,
		}
	case models.RoleOperations:
		return Capabilities{MutateOrders: true, MutateInventory: true, ManageBrands: true, Reconcile: true}
	case models.RolePackaging:
		return Capabilities{MutateOrders: true, MutateInventory: true}
	case models.RoleSupport:
		return Capabilities{MutateOrders: true}
	default: // BRAND_OWNER and anything unknown
		return Capabilities{}
	}
}

// VisibleOrders derives the order subset the given identity can see.
// A brand owner is pinned to its own brand and the ephemeral filter is
// ignored; for staff the filter applies when set.
func VisibleOrders(orders []models.Order, user models.UserAccount, brandFilter string) []models.Order {
	if user.Role == models.RoleBrandOwner {
		brandFilter = user.BrandID
	}
	if brandFilter == "" {
		return orders
	}
	var out []models.Order
	for _, o := range orders {
		if o.BrandID == brandFilter {
			out = append(out, o)
		}
	}
	return out
}

// VisibleInventory derives the inventory subset the given identity can
// see, with the same scoping rules as VisibleOrders
func VisibleInventory(items []models.InventoryItem, user models.UserAccount, brandFilter string) []models.InventoryItem {
	if user.Role == models.RoleBrandOwner {
		brandFilter = user.BrandID
	}
	if brandFilter == "" {
		return items
	}
	var out []models.InventoryItem
	for _, it := range items {
		if it.BrandID == brandFilter {
			out = append(out, it)
		}
	}
	return out
}

// DashboardStats are the headline counters on the landing page
type DashboardStats struct {
	TotalOrders      int   `json:"total_orders"`
	PendingPackaging int   `json:"pending_packaging"`
	InTransit        int   `json:"in_transit"`
	LowStock         int   `json:"low_stock"`
	SettledRevenue   int64 `json:"settled_revenue"`
}

// CustomerProfile is a customer contact joined with aggregates computed
// from the order collection at read time
type CustomerProfile struct {
	models.Customer
	Orders     int    `json:"orders"`
	TotalSpent int64  `json:"total_spent"`
	LastOrder  string `json:"last_order,omitempty"`
}

// BrandFinance is one row of the settlement breakdown
type BrandFinance struct {
	models.Brand
	CurrentBalance     int64 `json:"current_balance"`     // delivered, not yet reconciled
	OutstandingBalance int64 `json:"outstanding_balance"` // packed or shipped, in transit
}

// PageView is the payload handed to the rendering surface for one page
type PageView struct {
	Page         string       `json:"page"`
	Requested    string       `json:"requested,omitempty"`
	Capabilities Capabilities `json:"capabilities"`
	Data         any          `json:"data"`
}

// ViewService computes role-scoped page payloads. It holds no state of
// its own: every view is recomputed from the store on each call.
type ViewService struct {
	store      *store.Store
	onboarding *OnboardingService
	logger     *zap.Logger
}

// NewViewService creates a new view service
func NewViewService(st *store.Store, onboarding *OnboardingService) *ViewService {
	return &ViewService{store: st, onboarding: onboarding, logger: util.GetLogger()}
}

// PageQuery carries the ephemeral, per-request view inputs
type PageQuery struct {
	BrandFilter  string
	Search       string
	ShippingView string
}

// Page resolves a page key for the identity and assembles its payload
func (v *ViewService) Page(ctx context.Context, user models.UserAccount, key string, q PageQuery) *PageView {
	_, span := util.StartSpan(ctx, "ViewService.Page")
	defer span.End()

	resolved := ResolvePage(user.Role, key)
	view := &PageView{
		Page:         resolved,
		Capabilities: CapabilitiesFor(user.Role),
	}
	if resolved != key {
		view.Requested = key
	}

	orders := VisibleOrders(v.store.Orders(), user, q.BrandFilter)
	items := VisibleInventory(v.store.Inventory(), user, q.BrandFilter)

	switch resolved {
	case PageOrders:
		view.Data = map[string]any{
			"orders":    orders,
			"inventory": items,
			"customers": v.CustomerProfiles(orders),
			"brands":    v.store.Brands(),
			"statuses":  models.AllOrderStatuses,
		}
	case PageInventory:
		view.Data = map[string]any{
			"items":  items,
			"orders": orders,
		}
	case PageCustomers:
		view.Data = map[string]any{
			"customers": v.CustomerProfiles(orders),
			"orders":    orders,
		}
	case PageShipping:
		view.Data = map[string]any{
			"view":  normalizeShippingView(q.ShippingView),
			"queue": ShippingQueue(orders, q.ShippingView, q.Search),
		}
	case PageReports:
		view.Data = map[string]any{
			"finances": v.BrandFinances(orders, user),
		}
	case PageBrands:
		view.Data = map[string]any{
			"brands":     v.store.Brands(),
			"orders":     orders,
			"onboarding": v.onboarding.Pending(),
		}
	case PageSettings:
		view.Data = map[string]any{
			"users":     v.store.Users(),
			"brands":    v.store.Brands(),
			"inquiries": v.store.Inquiries(),
		}
	default:
		view.Data = map[string]any{
			"stats":     Stats(orders, items, v.store.Brands()),
			"orders":    orders,
			"inventory": items,
			"brands":    v.store.Brands(),
		}
	}

	v.logger.Debug("Page resolved",
		zap.String("requested", key),
		zap.String("page", resolved),
		zap.String("role", string(user.Role)))
	return view
}

// Stats computes the dashboard headline counters from the visible data
func Stats(orders []models.Order, items []models.InventoryItem, brands []models.Brand) DashboardStats {
	stats := DashboardStats{TotalOrders: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case models.OrderStatusNew, models.OrderStatusPackaging:
			stats.PendingPackaging++
		case models.OrderStatusPacked, models.OrderStatusShipped:
			stats.InTransit++
		}
	}
	for _, it := range items {
		if it.Stock < 10 {
			stats.LowStock++
		}
	}
	for _, b := range brands {
		stats.SettledRevenue += b.PreviousBalance
	}
	return stats
}

// CustomerProfiles joins the customer contacts with aggregates derived
// from the visible orders. Counters are never stored, so they cannot go
// stale against the order collection.
func (v *ViewService) CustomerProfiles(orders []models.Order) []CustomerProfile {
	profiles := make([]CustomerProfile, 0)
	seen := make(map[string]int)

	for _, c := range v.store.Customers() {
		seen[c.Name] = len(profiles)
		profiles = append(profiles, CustomerProfile{Customer: c})
	}
	for _, o := range orders {
		idx, ok := seen[o.Customer]
		if !ok {
			seen[o.Customer] = len(profiles)
			profiles = append(profiles, CustomerProfile{Customer: models.Customer{Name: o.Customer}})
			idx = seen[o.Customer]
		}
		profiles[idx].Orders++
		profiles[idx].TotalSpent += o.Total
		if o.Created > profiles[idx].LastOrder {
			profiles[idx].LastOrder = o.Created
		}
	}
	return profiles
}

// BrandFinances builds the settlement breakdown: one row per brand the
// identity can see, with delivered-unreconciled and in-transit totals
// from the visible orders
func (v *ViewService) BrandFinances(orders []models.Order, user models.UserAccount) []BrandFinance {
	var rows []BrandFinance
	for _, b := range v.store.Brands() {
		if user.Role == models.RoleBrandOwner && b.ID != user.BrandID {
			continue
		}
		row := BrandFinance{Brand: b}
		for _, o := range orders {
			if o.BrandID != b.ID {
				continue
			}
			switch {
			case o.Status == models.OrderStatusDelivered && !o.Reconciled:
				row.CurrentBalance += o.Total
			case o.Status == models.OrderStatusPacked || o.Status == models.OrderStatusShipped:
				row.OutstandingBalance += o.Total
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ShippingQueue filters the visible orders down to the shipping-relevant
// subset: outbound covers packed through delivered, returns covers
// returned and exchanged. An optional search term matches order id or
// customer name, case-insensitively.
func ShippingQueue(orders []models.Order, view, search string) []models.Order {
	view = normalizeShippingView(view)
	search = strings.ToLower(search)

	var out []models.Order
	for _, o := range orders {
		if search != "" &&
			!strings.Contains(strings.ToLower(o.ID), search) &&
			!strings.Contains(strings.ToLower(o.Customer), search) {
			continue
		}
		switch view {
		case ShippingViewReturns:
			if o.Status == models.OrderStatusReturned || o.Status == models.OrderStatusExchange {
				out = append(out, o)
			}
		default:
			if o.Status == models.OrderStatusPacked || o.Status == models.OrderStatusShipped || o.Status == models.OrderStatusDelivered {
				out = append(out, o)
			}
		}
	}
	return out
}

func normalizeShippingView(view string) string {
	if strings.EqualFold(view, ShippingViewReturns) {
		return ShippingViewReturns
	}
	return ShippingViewOutbound
}
