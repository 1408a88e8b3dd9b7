package models

// Role determines which pages and actions an account can reach
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleOperations Role = "OPERATIONS"
	RolePackaging  Role = "PACKAGING"
	RoleSupport    Role = "SUPPORT"
	RoleBrandOwner Role = "BRAND_OWNER"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOperations, RolePackaging, RoleSupport, RoleBrandOwner:
		return true
	}
	return false
}

// OrderStatus is the lifecycle stage of a single customer order
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusPackaging OrderStatus = "PACKAGING"
	OrderStatusPacked    OrderStatus = "PACKED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusReturned  OrderStatus = "RETURNED"
	OrderStatusExchange  OrderStatus = "EXCHANGE"
)

// AllOrderStatuses in display order
var AllOrderStatuses = []OrderStatus{
	OrderStatusNew,
	OrderStatusPackaging,
	OrderStatusPacked,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusReturned,
	OrderStatusExchange,
}

// Valid reports whether s is one of the known order statuses
func (s OrderStatus) Valid() bool {
	for _, known := range AllOrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Inquiry statuses
const (
	InquiryStatusNew      = "NEW"
	InquiryStatusApproved = "APPROVED"
	InquiryStatusRejected = "REJECTED"
)

// UserAccount is a staff or partner login. Email is the unique key.
// Passwords are stored and compared as plaintext: this is seeded demo
// data for a system with no real user provisioning.
type UserAccount struct {
	Email      string `json:"email"`
	Password   string `json:"-"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
	BrandID    string `json:"brand_id,omitempty"`
	Active     bool   `json:"active"`
}

// Brand is a fulfillment partner. Orders, inventory items and owner
// accounts reference it by ID; the name is display-only and can be
// changed without touching dependents.
type Brand struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	Color           string `json:"color"`
	PreviousBalance int64  `json:"previous_balance"` // settled-and-paid total, cents
	AdminEmail      string `json:"admin_email"`
	AdminPhone      string `json:"admin_phone"`
	Description     string `json:"description"`
	BrandPassword   string `json:"-"`
	Integrated      bool   `json:"integrated"`
}

// Order is a customer order owned by one brand
type Order struct {
	ID         string      `json:"id"`
	BrandID    string      `json:"brand_id"`
	Customer   string      `json:"customer"`
	Status     OrderStatus `json:"status"`
	Total      int64       `json:"total"` // cents
	Created    string      `json:"created"`
	Source     string      `json:"source"`
	Carrier    string      `json:"carrier,omitempty"`
	Tracking   string      `json:"tracking,omitempty"`
	Reconciled bool        `json:"reconciled,omitempty"`
}

// InventoryItem is a stocked product owned by one brand
type InventoryItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	SKU     string `json:"sku"`
	Stock   int    `json:"stock"`
	Price   int64  `json:"price"` // cents
	BrandID string `json:"brand_id"`
}

// Customer is a buyer contact record. Order count, total spent and last
// order date are derived from the order collection on read, never stored.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PartnerInquiry is an unsolicited partner application awaiting admin
// approval, the precursor to brand creation
type PartnerInquiry struct {
	ID       string `json:"id"`
	Brand    string `json:"brand"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Shipping string `json:"shipping"`
	Products string `json:"products"`
	Status   string `json:"status"`
}

// BrandPalette is the fixed set of colors assigned to new brands,
// round-robin by current brand count
var BrandPalette = []string{"#2563eb", "#7c3aed", "#db2777", "#dc2626", "#16a34a", "#d97706"}
